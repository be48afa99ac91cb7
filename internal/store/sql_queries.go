package store

// Hand-written queries for the credential flow and the dashboard. The
// entity repositories build their statements dynamically with squirrel;
// the queries below are fixed-shape and kept as plain constants.
const (
	userColumns = `id, email, senha_hash, senha_temporaria, ativo, ultimo_login, perfil_id, pessoa_id`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM usuarios
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM usuarios
    WHERE id = $1;`

	findActiveUserByID = `SELECT ` + userColumns + `
    FROM usuarios
    WHERE id = $1 AND ativo = TRUE;`

	setPasswordHash = `UPDATE usuarios
    SET senha_hash = $2
    WHERE id = $1;`

	setPasswordHashClearTemporary = `UPDATE usuarios
    SET senha_hash = $2, senha_temporaria = NULL
    WHERE id = $1;`

	touchLastLogin = `UPDATE usuarios
    SET ultimo_login = NOW()
    WHERE id = $1;`

	findRoleByID = `SELECT id, nome, permissoes
    FROM perfis
    WHERE id = $1;`

	countCommunities = `SELECT COUNT(*) FROM comunidades;`
	countPastorals   = `SELECT COUNT(*) FROM pastorais;`
	countPeople      = `SELECT COUNT(*) FROM pessoas;`
	countEvents      = `SELECT COUNT(*) FROM eventos;`
	countActions     = `SELECT COUNT(*) FROM acoes;`

	eventsByMonth = `SELECT to_char(data, 'YYYY-MM') AS mes, COUNT(*) AS total
    FROM eventos
    GROUP BY 1
    ORDER BY 1;`

	actionsByStatus = `SELECT status, COUNT(*) AS total
    FROM acoes
    GROUP BY status
    ORDER BY status;`
)
