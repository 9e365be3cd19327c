package geo

import (
	"context"
	"fmt"
	"math"

	"github.com/vicholitvak/moai-search/internal/models"
)

const earthRadiusKm = 6371.0 // Earth's radius in kilometers

// CookDistance pairs a cook with its distance to the search origin.
type CookDistance struct {
	Cook       models.Cook
	DistanceKm float64
}

// Service is the geo contract the search engine consumes. Implementations
// must be safe for concurrent use.
type Service interface {
	GetNearbyCooks(ctx context.Context, origin models.Location, radiusKm float64) ([]CookDistance, error)
	EstimateDelivery(ctx context.Context, origin, destination models.Location) (fee float64, etaMinutes int, err error)
}

// CookSource is the slice of catalog access the haversine service needs.
type CookSource interface {
	GetAllCooks(ctx context.Context) ([]models.Cook, error)
}

type DeliveryConfig struct {
	BaseFee             float64
	FeePerKm            float64
	SpeedKmh            float64
	PickupBufferMinutes int
}

func DefaultDeliveryConfig() DeliveryConfig {
	return DeliveryConfig{
		BaseFee:             1500,
		FeePerKm:            300,
		SpeedKmh:            25,
		PickupBufferMinutes: 10,
	}
}

// HaversineService resolves nearby cooks by great-circle distance over the
// catalog's cook collection and estimates fee and ETA from the distance.
type HaversineService struct {
	cooks CookSource
	cfg   DeliveryConfig
}

func NewHaversineService(cooks CookSource, cfg DeliveryConfig) *HaversineService {
	if cfg.SpeedKmh <= 0 {
		cfg.SpeedKmh = DefaultDeliveryConfig().SpeedKmh
	}
	return &HaversineService{cooks: cooks, cfg: cfg}
}

func (s *HaversineService) GetNearbyCooks(ctx context.Context, origin models.Location, radiusKm float64) ([]CookDistance, error) {
	cooks, err := s.cooks.GetAllCooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve nearby cooks: %w", err)
	}

	var nearby []CookDistance
	for _, cook := range cooks {
		if !cook.IsActive {
			continue
		}
		if distance := Distance(origin, cook.Location); distance <= radiusKm {
			nearby = append(nearby, CookDistance{Cook: cook, DistanceKm: distance})
		}
	}
	return nearby, nil
}

func (s *HaversineService) EstimateDelivery(ctx context.Context, origin, destination models.Location) (float64, int, error) {
	distance := Distance(origin, destination)

	fee := s.cfg.BaseFee + s.cfg.FeePerKm*distance
	// round to the nearest 10 CLP
	fee = math.Round(fee/10) * 10

	travelMinutes := distance / s.cfg.SpeedKmh * 60
	eta := s.cfg.PickupBufferMinutes + int(math.Ceil(travelMinutes))

	return fee, eta, nil
}

// Distance returns the great-circle distance between two points in km.
func Distance(loc1, loc2 models.Location) float64 {
	lat1 := degreesToRadians(loc1.Lat)
	lon1 := degreesToRadians(loc1.Lon)
	lat2 := degreesToRadians(loc2.Lat)
	lon2 := degreesToRadians(loc2.Lon)

	// Haversine formula
	dlat := lat2 - lat1
	dlon := lon2 - lon1
	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
