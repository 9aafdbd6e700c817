package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows       = errors.New("no rows in result set")
	ErrTooManyRows  = errors.New("too many rows in result set")
	ErrStoreFailed  = errors.New("could not store data")
	ErrAlreadyExist = errors.New("already exists")
	ErrDeleted      = errors.New("deleted")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS organizations (
			organization_id	BIGSERIAL	PRIMARY KEY,
			name			TEXT		NOT NULL UNIQUE,
			active			BOOLEAN		NOT NULL DEFAULT TRUE,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted			BOOLEAN		NOT NULL DEFAULT FALSE,
			deleted_on		timestamp with time zone NULL
		);

		CREATE TABLE IF NOT EXISTS shelves (
			shelf_id		BIGSERIAL	PRIMARY KEY,
			name			TEXT		NOT NULL,
			location		TEXT		NULL,
			organization_id	BIGINT		NULL REFERENCES organizations (organization_id),
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted			BOOLEAN		NOT NULL DEFAULT FALSE,
			deleted_on		timestamp with time zone NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			product_id		BIGSERIAL	PRIMARY KEY,
			organization_id	BIGINT		NOT NULL REFERENCES organizations (organization_id),
			name			TEXT		NOT NULL,
			price			BIGINT		NOT NULL DEFAULT 0,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted			BOOLEAN		NOT NULL DEFAULT FALSE,
			deleted_on		timestamp with time zone NULL,
			CONSTRAINT products_name_org_unique UNIQUE (organization_id, name, deleted)
		);

		CREATE TABLE IF NOT EXISTS product_discounts (
			discount_id		BIGSERIAL	PRIMARY KEY,
			product_id		BIGINT		NOT NULL REFERENCES products (product_id),
			new_price		BIGINT		NULL,
			discount_percent INT		NULL,
			valid_from		timestamp with time zone NOT NULL,
			valid_until		timestamp with time zone NOT NULL,
			active			BOOLEAN		NOT NULL DEFAULT TRUE,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT discount_one_price CHECK (num_nonnulls(new_price, discount_percent) = 1)
		);

		CREATE TABLE IF NOT EXISTS shelf_positions (
			position_id		BIGSERIAL	PRIMARY KEY,
			shelf_id		BIGINT		NOT NULL REFERENCES shelves (shelf_id),
			row_number		INT			NOT NULL,
			column_number	INT			NOT NULL,
			product_id		BIGINT		NULL REFERENCES products (product_id),
			current_stock_percent			INT	NULL,
			max_current_product_capacity	INT	NULL,
			low_stock_threshold_percent		INT	NOT NULL DEFAULT 20,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT positions_row_column_unique UNIQUE (shelf_id, row_number, column_number)
		);

		CREATE TABLE IF NOT EXISTS gateway_devices (
			gateway_id		BIGSERIAL	PRIMARY KEY,
			serial_number	TEXT		NOT NULL UNIQUE,
			last_connected	timestamp with time zone NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted			BOOLEAN		NOT NULL DEFAULT FALSE,
			deleted_on		timestamp with time zone NULL
		);

		CREATE TABLE IF NOT EXISTS shelf_sensor_devices (
			device_id		BIGSERIAL	PRIMARY KEY,
			gateway_id		BIGINT		NOT NULL REFERENCES gateway_devices (gateway_id),
			serial_number	TEXT		NOT NULL UNIQUE,
			number_of_slots	INT			NOT NULL,
			last_reported	timestamp with time zone NULL,
			current_battery_percent	INT	NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pairings (
			pairing_code	TEXT		PRIMARY KEY,
			device_id		BIGINT		NOT NULL REFERENCES shelf_sensor_devices (device_id) ON DELETE CASCADE,
			slot_number		INT			NOT NULL,
			shelf_position_id	BIGINT	NULL REFERENCES shelf_positions (position_id),
			nfc_tag			TEXT		NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pairings_device_slot_unique UNIQUE (device_id, slot_number)
		);

		CREATE TABLE IF NOT EXISTS status_logs (
			time			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			device_id		BIGINT		NOT NULL REFERENCES shelf_sensor_devices (device_id) ON DELETE CASCADE,
			battery_percent	INT			NOT NULL,
			CONSTRAINT pkey_status_logs PRIMARY KEY (time, device_id)
		);

		CREATE INDEX IF NOT EXISTS shelves_org_deleted_idx ON shelves (organization_id) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS products_org_deleted_idx ON products (organization_id) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS positions_shelf_idx ON shelf_positions (shelf_id);
		CREATE INDEX IF NOT EXISTS pairings_position_idx ON pairings (shelf_position_id);
		CREATE INDEX IF NOT EXISTS status_logs_device_idx ON status_logs (device_id, time DESC);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
