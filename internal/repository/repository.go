// Package repository provides methods to initialize db and perform different db queries.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Jaber395/Projekt-Wettervorhersage-Funk-Gommlich/internal/model"
)

// DB collections.
const (
	climateStatsCollection = "climateStats"
	stationsCollection     = "stations"
)

// DB errors.
var (
	ErrNoSuchStation           = errors.New("station with the given id does not exist")
	ErrNoClimateDataForStation = errors.New("there is no climate data for the given station")
	ErrNoStations              = errors.New("there are no stations yet")
)

// Repository wraps database and mongo client.
type Repository struct {
	client *mongo.Client
	db     *mongo.Database
}

// New creates new repository from mongo database.
func New(mongoURI, dbName string) (*Repository, error) {
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := NewMongoDBClient(ctxWithTimeout, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	db := client.Database(dbName)

	err = createIndexes(ctxWithTimeout, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return &Repository{
		client: client,
		db:     db,
	}, nil
}

// createIndexes creates necessary indexes for collections.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	indexModelStats := mongo.IndexModel{
		Keys:    bson.D{{Key: "stationId", Value: 1}, {Key: "year", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := db.Collection(climateStatsCollection).Indexes().CreateOne(ctx, indexModelStats)
	if err != nil {
		return fmt.Errorf("failed to create unique station-year index: %w", err)
	}

	return nil
}

// Close closes mongo db connection.
func (r *Repository) Close() error {
	if err := r.client.Disconnect(context.TODO()); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}

	return nil
}

// InsertStationsInfo inserts stations info into stations collection.
func (r *Repository) InsertStationsInfo(ctx context.Context, stationsInfo []*model.Station) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	m := make([]interface{}, 0, len(stationsInfo))
	for _, v := range stationsInfo {
		m = append(m, v)
	}

	res, err := r.db.Collection(stationsCollection).InsertMany(ctxWithTimeout, m)
	if err != nil {
		return err
	}
	if len(res.InsertedIDs) != len(m) {
		return errors.New("not all data was inserted")
	}

	return nil
}

// GetStation gets a station by its id.
func (r *Repository) GetStation(ctx context.Context, stationID string) (*model.Station, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id": stationID,
	}

	station := new(model.Station)
	err := r.db.Collection(stationsCollection).FindOne(ctxWithTimeout, filter).Decode(station)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoSuchStation
	}
	if err != nil {
		return nil, err
	}

	return station, nil
}

// GetStationsCoordinates get stations coordinates.
func (r *Repository) GetStationsCoordinates(ctx context.Context) ([]*model.Station, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	stations, err := r.filterStations(ctxWithTimeout, bson.M{}, nil)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoStations
	}
	if err != nil {
		return nil, err
	}

	return stations, nil
}

func (r *Repository) filterStations(ctx context.Context, filter primitive.M, opts *options.FindOptions) ([]*model.Station, error) {
	var stations []*model.Station

	cur, err := r.db.Collection(stationsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		st := model.Station{}
		err := cur.Decode(&st)
		if err != nil {
			return nil, err
		}

		stations = append(stations, &st)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	if len(stations) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return stations, nil
}

// InsertClimateStatistics inserts per-year climate statistics into climateStats collection.
func (r *Repository) InsertClimateStatistics(ctx context.Context, statistics []*model.ClimateStatistics) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	m := make([]interface{}, 0, len(statistics))
	for _, v := range statistics {
		m = append(m, v)
	}

	res, err := r.db.Collection(climateStatsCollection).InsertMany(ctxWithTimeout, m)
	if err != nil {
		return err
	}
	if len(res.InsertedIDs) != len(m) {
		return errors.New("not all data was inserted")
	}

	return nil
}

// GetStationClimateStatistics gets the station's climate statistics inside the given year range.
func (r *Repository) GetStationClimateStatistics(ctx context.Context, stationID string, startYear, endYear int) ([]*model.ClimateStatistics, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"stationId": stationID,
		"year":      bson.M{"$gte": startYear, "$lte": endYear},
	}

	opts := options.Find().SetSort(bson.M{"year": 1})

	stats, err := r.filterClimateStatistics(ctxWithTimeout, filter, opts)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoClimateDataForStation
	}
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *Repository) filterClimateStatistics(ctx context.Context, filter primitive.M, opts *options.FindOptions) ([]*model.ClimateStatistics, error) {
	var stats []*model.ClimateStatistics

	cur, err := r.db.Collection(climateStatsCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		cs := model.ClimateStatistics{}
		err := cur.Decode(&cs)
		if err != nil {
			return nil, err
		}

		stats = append(stats, &cs)
	}

	if err := cur.Err(); err != nil {
		return nil, err
	}

	if len(stats) == 0 {
		return nil, mongo.ErrNoDocuments
	}

	return stats, nil
}

// CheckIfStatisticsExists check if there are statistics for the given station.
func (r *Repository) CheckIfStatisticsExists(ctx context.Context, stationID string) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	num, err := r.db.Collection(climateStatsCollection).CountDocuments(ctxWithTimeout, bson.M{"stationId": stationID})

	return num > 0, err
}
