package schema

// notes.id matches note.MaxSQLIDLength
const schema = `CREATE TABLE IF NOT EXISTS notes (
	id VARCHAR(255) PRIMARY KEY,
	content LONGTEXT,
	createdAt TIMESTAMP,
	updatedAt TIMESTAMP
)`

const dropSchema = `DROP TABLE notes`
