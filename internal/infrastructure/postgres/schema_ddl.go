package postgres

// DDL de las tablas de cada esquema de tenant. El orden importa: las tablas se
// crean respetando dependencias (companies antes que drivers, payments antes
// que payment_history). El marcador {schema} se sustituye por el nombre de
// esquema ya validado (tenancy.SchemaName); nunca por entrada cruda.

type tenantTable struct {
	name string
	ddl  string
}

var tenantTables = []tenantTable{
	{
		name: "companies",
		ddl: `CREATE TABLE {schema}.companies (
			id UUID PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			nit VARCHAR(20) UNIQUE NOT NULL,
			contact_name VARCHAR(200) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			email VARCHAR(255) NOT NULL DEFAULT '',
			address VARCHAR(255) NOT NULL DEFAULT '',
			commission_rate NUMERIC(5,4) NOT NULL DEFAULT 0.10,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "drivers",
		ddl: `CREATE TABLE {schema}.drivers (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES {schema}.companies(id),
			name VARCHAR(200) NOT NULL,
			document VARCHAR(30) UNIQUE NOT NULL,
			phone VARCHAR(50) NOT NULL DEFAULT '',
			license_number VARCHAR(50) NOT NULL DEFAULT '',
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "weekly_processing",
		ddl: `CREATE TABLE {schema}.weekly_processing (
			id UUID PRIMARY KEY,
			driver_id UUID NOT NULL REFERENCES {schema}.drivers(id),
			week_start DATE NOT NULL,
			trips_count INT NOT NULL DEFAULT 0,
			gross_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
			commission_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
			net_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT weekly_processing_driver_week UNIQUE (driver_id, week_start)
		)`,
	},
	{
		name: "payments",
		ddl: `CREATE TABLE {schema}.payments (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES {schema}.companies(id),
			weekly_processing_id UUID REFERENCES {schema}.weekly_processing(id),
			amount NUMERIC(14,2) NOT NULL,
			method VARCHAR(20) NOT NULL DEFAULT 'transfer',
			reference VARCHAR(100) NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT '',
			paid_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "payment_history",
		ddl: `CREATE TABLE {schema}.payment_history (
			id UUID PRIMARY KEY,
			payment_id UUID NOT NULL REFERENCES {schema}.payments(id) ON DELETE CASCADE,
			action VARCHAR(20) NOT NULL,
			amount NUMERIC(14,2) NOT NULL,
			reference VARCHAR(100) NOT NULL DEFAULT '',
			changed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "company_balances",
		ddl: `CREATE TABLE {schema}.company_balances (
			company_id UUID PRIMARY KEY REFERENCES {schema}.companies(id),
			balance NUMERIC(14,2) NOT NULL DEFAULT 0,
			last_payment_at TIMESTAMPTZ,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "transport_orders",
		ddl: `CREATE TABLE {schema}.transport_orders (
			id UUID PRIMARY KEY,
			order_number BIGINT UNIQUE NOT NULL,
			company_id UUID NOT NULL REFERENCES {schema}.companies(id),
			driver_id UUID REFERENCES {schema}.drivers(id),
			origin VARCHAR(200) NOT NULL,
			destination VARCHAR(200) NOT NULL,
			cargo_description TEXT NOT NULL DEFAULT '',
			amount NUMERIC(14,2) NOT NULL DEFAULT 0,
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			scheduled_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "historical_trips",
		ddl: `CREATE TABLE {schema}.historical_trips (
			id UUID PRIMARY KEY,
			driver_id UUID NOT NULL REFERENCES {schema}.drivers(id),
			company_id UUID NOT NULL REFERENCES {schema}.companies(id),
			origin VARCHAR(200) NOT NULL,
			destination VARCHAR(200) NOT NULL,
			trip_date DATE NOT NULL,
			distance_km NUMERIC(10,2) NOT NULL DEFAULT 0,
			amount NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name: "order_sequence",
		ddl: `CREATE TABLE {schema}.order_sequence (
			id INT PRIMARY KEY,
			current_value BIGINT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
}

// defaultCompanies empresas de referencia sembradas en todo esquema nuevo.
var defaultCompanies = []struct {
	Name string
	NIT  string
}{
	{"Transportes Andinos S.A.S.", "900100001-1"},
	{"Logística del Caribe Ltda.", "900100002-2"},
	{"Carga Express Nacional S.A.", "900100003-3"},
	{"Fletes del Pacífico S.A.S.", "900100004-4"},
}
