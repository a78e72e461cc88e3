package mongo

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pcland/storefront-api/env"
	"github.com/pcland/storefront-api/types"
)

// Provider persists cart reference sequences in MongoDB,
// one document per device
type Provider struct {
	connectionURI string
	databaseName  string
	client        *mongo.Client
}

// The stored shape of a single device's cart
type cartDocument struct {
	DeviceID   string                `bson:"device_id"`
	References []types.CartReference `bson:"references"`
	UpdatedAt  time.Time             `bson:"updated_at"`
}

// NewProvider creates a new provider and loads values in from the environment
func NewProvider() (*Provider, error) {
	connectionURI, err := env.GetEnv("database connection URI", "MONGO_DB_URI")
	if err != nil {
		return nil, err
	}

	databaseName, err := env.GetEnv("database name", "MONGO_DB_NAME")
	if err != nil {
		return nil, err
	}

	return &Provider{
		connectionURI: connectionURI,
		databaseName:  databaseName,
		client:        nil,
	}, nil
}

// Connect connects to the database and prepares indices
func (p *Provider) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(p.connectionURI))
	if err != nil {
		return errors.Wrap(err, "could not connect to the database")
	}

	// Ping the primary
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return errors.Wrap(err, "could not ping the database")
	}

	p.client = client

	// Initialize any collections/indices
	err = p.initialize(ctx)
	if err != nil {
		return err
	}

	return nil
}

// Disconnect disconnects from the database
func (p *Provider) Disconnect(ctx context.Context) error {
	err := p.client.Disconnect(ctx)
	if err != nil {
		return err
	}

	return nil
}

// Create anything needed for the database,
// like indices
func (p *Provider) initialize(ctx context.Context) error {
	log.Println("initializing the MongoDB database")

	_, err := p.carts().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"device_id": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return errors.Wrap(err, "could not create the cart index")
	}

	return nil
}

func (p *Provider) carts() *mongo.Collection {
	return p.client.Database(p.databaseName).Collection("carts")
}

// GetReferences gets the ordered cart reference sequence for a device.
// A device without a stored cart resolves to an empty sequence.
func (p *Provider) GetReferences(ctx context.Context, deviceID string) ([]types.CartReference, error) {
	collection := p.carts()
	result := collection.FindOne(ctx, bson.D{{Key: "device_id", Value: deviceID}})
	if result.Err() == mongo.ErrNoDocuments {
		return []types.CartReference{}, nil
	}

	var document cartDocument
	err := result.Decode(&document)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode the stored cart")
	}

	// Return non-nil slice so JSON serialization is nice
	if document.References == nil {
		return []types.CartReference{}, nil
	}

	return document.References, nil
}

// PutReferences replaces the stored cart reference sequence for a device,
// creating the document if needed.
// Concurrent writers follow last-write-wins; there is no sequencing.
func (p *Provider) PutReferences(ctx context.Context, deviceID string, references []types.CartReference) error {
	collection := p.carts()

	document := cartDocument{
		DeviceID:   deviceID,
		References: references,
		UpdatedAt:  time.Now().UTC(),
	}

	options := options.Replace().SetUpsert(true)
	_, err := collection.ReplaceOne(ctx, bson.D{{Key: "device_id", Value: deviceID}}, document, options)
	if err != nil {
		return errors.Wrap(err, "could not store the cart")
	}

	return nil
}

// ClearReferences removes the stored cart for a device entirely.
// Clearing a device without a stored cart is a no-op.
func (p *Provider) ClearReferences(ctx context.Context, deviceID string) error {
	collection := p.carts()

	_, err := collection.DeleteOne(ctx, bson.D{{Key: "device_id", Value: deviceID}})
	if err != nil {
		return errors.Wrap(err, "could not clear the cart")
	}

	return nil
}
