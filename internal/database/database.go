package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/TechSynnovate-com/Rentnova-sub002/internal/models"
)

type Database struct {
	db *sql.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}

// GetAllProperties returns listings, optionally restricted to one city.
func (d *Database) GetAllProperties(city string) ([]models.Property, error) {
	query := `
        SELECT
            id,
            address,
            city,
            state,
            country,
            property_type,
            price,
            bedrooms,
            bathrooms,
            COALESCE(amenities, '') as amenities,
            furnished,
            COALESCE(available_from, CURRENT_TIMESTAMP) as available_from,
            COALESCE(created_at, CURRENT_TIMESTAMP) as created_at,
            latitude,
            longitude
        FROM properties
        WHERE (? = '' OR LOWER(city) = LOWER(?))
        ORDER BY created_at DESC, id ASC
    `
	rows, err := d.db.Query(query, city, city)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(
			&p.ID,
			&p.Address,
			&p.City,
			&p.State,
			&p.Country,
			&p.PropertyType,
			&p.Price,
			&p.Bedrooms,
			&p.Bathrooms,
			&p.Amenities,
			&p.Furnished,
			&p.AvailableFrom,
			&p.CreatedAt,
			&p.Latitude,
			&p.Longitude,
		); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

// GetCities returns the distinct city names with at least one listing.
func (d *Database) GetCities() ([]string, error) {
	rows, err := d.db.Query(`
        SELECT DISTINCT city
        FROM properties
        WHERE city IS NOT NULL AND city != ''
        ORDER BY city ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}
	return cities, rows.Err()
}

// GetAreaStats aggregates listing counts and price figures for one city.
func (d *Database) GetAreaStats(city string) (models.AreaStats, error) {
	query := `
        SELECT
            COUNT(*) as property_count,
            COALESCE(AVG(price), 0) as average_price,
            COALESCE(MIN(price), 0) as min_price,
            COALESCE(MAX(price), 0) as max_price
        FROM properties
        WHERE LOWER(city) = LOWER(?)
    `
	stats := models.AreaStats{City: city}
	err := d.db.QueryRow(query, city).Scan(
		&stats.PropertyCount,
		&stats.AveragePrice,
		&stats.MinPrice,
		&stats.MaxPrice,
	)
	return stats, err
}

// GetCityCoordinates returns the positions of all geocoded listings in a city.
func (d *Database) GetCityCoordinates(city string) ([]models.Coordinate, error) {
	query := `
        SELECT latitude, longitude
        FROM properties
        WHERE LOWER(city) = LOWER(?)
          AND latitude IS NOT NULL
          AND longitude IS NOT NULL
    `
	rows, err := d.db.Query(query, city)
	if err != nil {
		return nil, fmt.Errorf("failed to query coordinates: %w", err)
	}
	defer rows.Close()

	var coords []models.Coordinate
	for rows.Next() {
		var c models.Coordinate
		if err := rows.Scan(&c.Latitude, &c.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan coordinate: %w", err)
		}
		coords = append(coords, c)
	}
	return coords, rows.Err()
}

func (d *Database) GetDB() *sql.DB {
	return d.db
}

func (d *Database) Close() error {
	return d.db.Close()
}
