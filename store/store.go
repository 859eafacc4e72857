// Package store connects to the data store and manages saved projects
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/reclip-dev/reclip/internal/models"
)

const projectBucket = "projects"

var pathToDB string

var (
	errReclipRunning = errors.New(
		"is reclip already running? Only one instance can be active at a time",
	)

	ErrProjectNotFound = errors.New(
		"project not found: create it by recording first",
	)
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

func (c *Client) SaveProject(p *models.Project) error {
	key := []byte(p.Name)

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	p.UpdatedAt = time.Now()

	value, err := json.Marshal(p)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(projectBucket)).Put(key, value)
	})
}

func (c *Client) GetProject(name string) (*models.Project, error) {
	var p models.Project

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(projectBucket)).Get([]byte(name))
		if len(b) == 0 {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, name)
		}

		return json.Unmarshal(b, &p)
	})
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (c *Client) ListProjects() ([]*models.Project, error) {
	var projects []*models.Project

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(projectBucket)).Cursor()

		for k, v := cur.First(); k != nil; k, v = cur.Next() {
			var p models.Project

			err := json.Unmarshal(v, &p)
			if err != nil {
				return err
			}

			projects = append(projects, &p)
		}

		return nil
	})

	return projects, err
}

func (c *Client) DeleteProjects(names []string) error {
	return c.Update(func(tx *bolt.Tx) error {
		for _, name := range names {
			err := tx.Bucket([]byte(projectBucket)).Delete([]byte(name))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Open() error {
	db, err := openDB(pathToDB)
	if err != nil {
		return err
	}

	*c = Client{
		db,
	}

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errReclipRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	pathToDB = dbPath

	db, err := openDB(pathToDB)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(projectBucket))

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		db,
	}, nil
}
