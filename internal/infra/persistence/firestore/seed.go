package firestore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// Fixture is the on-disk shape of the catalog seed file.
type Fixture struct {
	Products   map[string]json.RawMessage `json:"products"`
	Categories map[string]json.RawMessage `json:"categories"`
	HeroImages map[string]json.RawMessage `json:"heroImages"`
}

// Seeder loads a catalog fixture into Firestore.
type Seeder struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewSeeder creates a new catalog seeder.
func NewSeeder(client *firestore.Client, logger *slog.Logger) *Seeder {
	return &Seeder{client: client, logger: logger}
}

// Seed writes the fixture inside one transaction, so a half-seeded catalog
// is never visible. Existing documents with the same IDs are replaced.
// Fixtures have to stay under the transaction write limit of 500 documents.
func (s *Seeder) Seed(ctx context.Context, fixturePath string) error {
	fixture, err := loadFixture(fixturePath)
	if err != nil {
		return err
	}

	total := len(fixture.Products) + len(fixture.Categories) + len(fixture.HeroImages)
	if total == 0 {
		return errors.New("fixture contains no documents")
	}

	err = s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := time.Now().UTC()
		for collection, docs := range map[string]map[string]json.RawMessage{
			collectionProducts:   fixture.Products,
			collectionCategories: fixture.Categories,
			collectionHeroImages: fixture.HeroImages,
		} {
			for id, raw := range docs {
				data, err := decodeFixtureDoc(raw, now)
				if err != nil {
					return errors.Wrapf(err, "invalid fixture document %s/%s", collection, id)
				}
				if err := tx.Set(s.client.Collection(collection).Doc(id), data); err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to seed catalog")
	}

	s.logger.Info("catalog seeded",
		slog.Int("products", len(fixture.Products)),
		slog.Int("categories", len(fixture.Categories)),
		slog.Int("hero_images", len(fixture.HeroImages)),
	)

	return nil
}

func loadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read fixture file")
	}

	var fixture Fixture
	if err := json.Unmarshal(raw, &fixture); err != nil {
		return nil, errors.Wrap(err, "failed to parse fixture file")
	}

	return &fixture, nil
}

// decodeFixtureDoc keeps fixture documents schemaless but stamps the audit
// fields the repositories expect.
func decodeFixtureDoc(raw json.RawMessage, now time.Time) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}

	if _, ok := data["createdAt"]; !ok {
		data["createdAt"] = now
	}
	data["updatedAt"] = now

	return data, nil
}
