package db

var schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id VARCHAR(120) PRIMARY KEY,
	name VARCHAR(80) NOT NULL,
	email VARCHAR(120) NOT NULL UNIQUE,
	premium VARCHAR(80) NOT NULL DEFAULT 'N',
	tickets JSONB NOT NULL DEFAULT '[]'
);
`
