package database

func (d *Database) RunMigrations() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS properties (
			id TEXT PRIMARY KEY,
			address TEXT,
			city TEXT,
			state TEXT,
			country TEXT,
			property_type TEXT,
			price REAL,
			bedrooms INTEGER,
			bathrooms INTEGER,
			amenities TEXT,
			furnished BOOLEAN DEFAULT 0,
			available_from TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			latitude REAL,
			longitude REAL
		);
	`)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_properties_city
		ON properties(city);
	`)
	if err != nil {
		return err
	}

	_, err = d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_properties_coordinates
		ON properties(latitude, longitude);
	`)
	if err != nil {
		return err
	}

	return nil
}
