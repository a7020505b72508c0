package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/VBoyanov/sqlkit"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type user struct {
	ID    uuid.UUID
	Name  string
	Email string
	Tier  uint8
}

func main() {
	// 1) Connect to the database
	godotenv.Load()
	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		panic(fmt.Errorf("connect: %w", err))
	}
	defer db.Close()
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		tier SMALLINT NOT NULL,
		tags TEXT[] NOT NULL DEFAULT '{}'
	)`); err != nil {
		panic(fmt.Errorf("create table: %w", err))
	}

	// 2) Insert a batch of users with one prepared statement,
	// flushing every 50 rows
	users := []user{
		{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", Tier: 1},
		{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", Tier: 2},
		{ID: uuid.New(), Name: "Carol", Email: "carol@example.com", Tier: 255},
	}
	counts, err := sqlkit.ExecBatchChunked(ctx,
		db, `INSERT INTO users (id, name, email, tier) VALUES ($1,$2,$3,$4)`,
		users, 50,
		func(p *sqlkit.Params, u user) error {
			p.Set(1, u.ID.String())
			p.Set(2, u.Name)
			p.Set(3, u.Email)
			p.SetUint8(4, u.Tier)
			return nil
		})
	if err != nil {
		panic(fmt.Errorf("batch insert: %w", err))
	}
	fmt.Printf("inserted %d users (per-row counts %v)\n", len(counts), counts)

	// 3) Tag Alice, using a scoped update
	affected, err := sqlkit.ExecWith(ctx, db,
		`UPDATE users SET tags = $1 WHERE name = $2`,
		func(p *sqlkit.Params) error {
			p.Set(1, `{admin,"early adopter"}`)
			p.Set(2, "Alice")
			return nil
		})
	if err != nil {
		panic(fmt.Errorf("update tags: %w", err))
	}
	fmt.Printf("tagged %d user\n", affected)

	// 4) Read everything back through a scoped cursor
	names, err := sqlkit.WithRows(ctx, db,
		`SELECT id, name, email, tier, tags FROM users ORDER BY name`, nil,
		func(rows *sql.Rows) ([]string, error) {
			var names []string
			for range sqlkit.Each(rows) {
				row, err := sqlkit.Current(rows)
				if err != nil {
					return nil, err
				}
				name, err := sqlkit.GetNamed[string](row, "name")
				if err != nil {
					return nil, err
				}
				tier, err := sqlkit.GetNamed[int16](row, "tier")
				if err != nil {
					return nil, err
				}
				if err := sqlkit.WithArrayNamed(row, "tags", func(tags []string) error {
					fmt.Printf("%s (tier %d) tags=%v\n", name, uint8(tier), tags)
					return nil
				}); err != nil {
					return nil, err
				}
				names = append(names, name)
			}
			return names, rows.Err()
		})
	if err != nil {
		panic(fmt.Errorf("list users: %w", err))
	}
	fmt.Printf("fetched %d users: %v\n", len(names), names)
}
