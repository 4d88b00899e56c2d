package database

// Tables are created in dependency order.
var schema = []struct {
	name string
	ddl  string
}{
	{"planos", `
	CREATE TABLE IF NOT EXISTS planos (
		id BIGSERIAL PRIMARY KEY,
		nome VARCHAR(100) UNIQUE NOT NULL,
		descricao TEXT NOT NULL DEFAULT '',
		preco NUMERIC(10,2) NOT NULL DEFAULT 0
	);`},
	{"registro", `
	CREATE TABLE IF NOT EXISTS registro (
		id BIGSERIAL PRIMARY KEY,
		nome_completo VARCHAR(150) NOT NULL,
		email VARCHAR(150) UNIQUE NOT NULL,
		cpf VARCHAR(20) NOT NULL,
		senha VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`},
	{"perfil", `
	CREATE TABLE IF NOT EXISTS perfil (
		id BIGSERIAL PRIMARY KEY,
		id_registro BIGINT UNIQUE NOT NULL REFERENCES registro(id),
		altura DOUBLE PRECISION NOT NULL DEFAULT 0,
		peso DOUBLE PRECISION NOT NULL DEFAULT 0,
		objetivo TEXT NOT NULL DEFAULT '',
		hora_treino_inicio TIME,
		data_treino_inicio DATE,
		hora_treino_fim TIME,
		data_treino_fim DATE,
		id_plano BIGINT REFERENCES planos(id)
	);`},
	{"exercicios", `
	CREATE TABLE IF NOT EXISTS exercicios (
		id BIGSERIAL PRIMARY KEY,
		nome_exercicio VARCHAR(150) UNIQUE NOT NULL,
		tipo_exercicio VARCHAR(50) NOT NULL
	);`},
	{"treino", `
	CREATE TABLE IF NOT EXISTS treino (
		id BIGSERIAL PRIMARY KEY,
		nome_treino VARCHAR(150) NOT NULL,
		id_cliente BIGINT NOT NULL REFERENCES registro(id),
		hora_treino_inicio TIME,
		hora_treino_fim TIME,
		data_treino DATE NOT NULL,
		training_stats JSONB
	);`},
	{"treino_exercicios", `
	CREATE TABLE IF NOT EXISTS treino_exercicios (
		id BIGSERIAL PRIMARY KEY,
		id_treino BIGINT NOT NULL REFERENCES treino(id) ON DELETE CASCADE,
		id_exercicio BIGINT NOT NULL REFERENCES exercicios(id),
		series INT NOT NULL DEFAULT 0,
		repeticoes INT NOT NULL DEFAULT 0,
		carga DOUBLE PRECISION NOT NULL DEFAULT 0
	);`},
	{"feedbacktreinos", `
	CREATE TABLE IF NOT EXISTS feedbacktreinos (
		id BIGSERIAL PRIMARY KEY,
		id_user BIGINT NOT NULL,
		id_treino BIGINT NOT NULL,
		feedback TEXT NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);`},
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_exercicios_tipo ON exercicios(tipo_exercicio);",
	"CREATE INDEX IF NOT EXISTS idx_treino_cliente ON treino(id_cliente);",
	"CREATE INDEX IF NOT EXISTS idx_treino_exercicios_treino ON treino_exercicios(id_treino);",
	"CREATE INDEX IF NOT EXISTS idx_feedbacktreinos_treino ON feedbacktreinos(id_treino);",
}
