package storage

import "github.com/jmoiron/sqlx"

// InitSchema 初始化数据库表结构
func InitSchema(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		fullname TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		password_hash TEXT NOT NULL,
		role INT NOT NULL DEFAULT 0,
		is_locked INT NOT NULL DEFAULT 0,
		account_balance NUMERIC(14,2) NOT NULL DEFAULT 0,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS tools (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		demo TEXT,
		link_download TEXT,
		slug TEXT NOT NULL,
		sold_quantity INT NOT NULL DEFAULT 0,
		view_count INT NOT NULL DEFAULT 0,
		status INT NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS tool_plans (
		id UUID PRIMARY KEY,
		tool_id UUID NOT NULL REFERENCES tools(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price NUMERIC(14,2) NOT NULL,
		duration INT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tool_images (
		id UUID PRIMARY KEY,
		tool_id UUID NOT NULL REFERENCES tools(id) ON DELETE CASCADE,
		file_url TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS vps (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		ram INT NOT NULL,
		disk INT NOT NULL,
		cpu INT NOT NULL,
		bandwidth INT NOT NULL DEFAULT 0,
		location TEXT,
		os TEXT,
		price NUMERIC(14,2) NOT NULL,
		tags TEXT[] NOT NULL DEFAULT '{}',
		status INT NOT NULL DEFAULT 1,
		sold_quantity INT NOT NULL DEFAULT 0,
		view_count INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS proxies (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(14,2) NOT NULL,
		inventory INT NOT NULL DEFAULT 0,
		sold_quantity INT NOT NULL DEFAULT 0,
		view_count INT NOT NULL DEFAULT 0,
		status INT NOT NULL DEFAULT 1,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(id),
		type TEXT NOT NULL,
		total_price NUMERIC(14,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'setup',
		note TEXT,
		completed_at TIMESTAMPTZ,
		expired_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS vps_orders (
		order_id UUID PRIMARY KEY REFERENCES orders(id) ON DELETE CASCADE,
		ip TEXT NOT NULL,
		username TEXT NOT NULL,
		password TEXT NOT NULL,
		expired_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS proxy_orders (
		order_id UUID PRIMARY KEY REFERENCES orders(id) ON DELETE CASCADE,
		proxies TEXT NOT NULL,
		expired_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS tool_orders (
		order_id UUID PRIMARY KEY REFERENCES orders(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		price NUMERIC(14,2) NOT NULL,
		duration INT NOT NULL,
		api_key TEXT,
		expired_at TIMESTAMPTZ,
		change_api_key_at TIMESTAMPTZ
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(id),
		amount NUMERIC(14,2) NOT NULL,
		balance_before NUMERIC(14,2) NOT NULL,
		balance_after NUMERIC(14,2) NOT NULL,
		action TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS files (
		id UUID PRIMARY KEY,
		file_name TEXT NOT NULL,
		file_url TEXT NOT NULL,
		object_key TEXT NOT NULL,
		content_type TEXT NOT NULL DEFAULT '',
		size BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	_, err := db.Exec(schema)
	return err
}
