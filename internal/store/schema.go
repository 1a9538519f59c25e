package store

// sqliteSchema bootstraps the embedded database on first open. Map-valued
// columns (preferences, settings, metadata, data) are stored as serialized
// text; the models.JSONMap scanner decodes them on read.
const sqliteSchema = `
CREATE TABLE teachers (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    avatar_url    TEXT,
    preferences   TEXT,
    password_hash TEXT NOT NULL DEFAULT '',
    created_at    TIMESTAMP NOT NULL,
    updated_at    TIMESTAMP NOT NULL
);

CREATE TABLE classes (
    id          TEXT PRIMARY KEY,
    teacher_id  TEXT NOT NULL REFERENCES teachers(id),
    name        TEXT NOT NULL,
    description TEXT,
    subject     TEXT,
    grade_level TEXT,
    settings    TEXT,
    created_at  TIMESTAMP NOT NULL,
    updated_at  TIMESTAMP NOT NULL
);

CREATE TABLE students (
    id           TEXT PRIMARY KEY,
    class_id     TEXT NOT NULL REFERENCES classes(id),
    name         TEXT NOT NULL,
    student_id   TEXT,
    parent_email TEXT,
    parent_phone TEXT,
    metadata     TEXT,
    created_at   TIMESTAMP NOT NULL,
    updated_at   TIMESTAMP NOT NULL
);

CREATE TABLE materials (
    id           TEXT PRIMARY KEY,
    class_id     TEXT NOT NULL REFERENCES classes(id),
    title        TEXT NOT NULL,
    content      TEXT,
    type         TEXT NOT NULL DEFAULT 'document',
    file_url     TEXT,
    metadata     TEXT,
    is_published INTEGER NOT NULL DEFAULT 0,
    created_at   TIMESTAMP NOT NULL,
    updated_at   TIMESTAMP NOT NULL
);

CREATE TABLE progress_updates (
    id         TEXT PRIMARY KEY,
    student_id TEXT NOT NULL REFERENCES students(id),
    teacher_id TEXT NOT NULL REFERENCES teachers(id),
    content    TEXT NOT NULL,
    type       TEXT NOT NULL DEFAULT 'general',
    data       TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX idx_classes_teacher_id ON classes(teacher_id);
CREATE INDEX idx_students_class_id ON students(class_id);
CREATE INDEX idx_materials_class_id ON materials(class_id);
CREATE INDEX idx_progress_updates_student_id ON progress_updates(student_id);
`
