package services

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"hotels-server/api/hotelapi"
	"hotels-server/config"
	"hotels-server/dao/redis"
	"hotels-server/models"
	"hotels-server/obs"
	"hotels-server/poller"
	"hotels-server/util"
)

// ListingService orchestrates a hotel search: it validates the criteria, runs
// the static hotel-list fetch and the polled price search concurrently, joins
// the two result sets by hotel ID and decorates each listing with its image
// URL. Every invocation is independent; the service holds no per-request
// state and is safe to share across concurrent requests.
type ListingService struct {
	hotelAPI        hotelapi.HotelAPI
	hotelDao        *redis.RedisHotelDAO // nil disables the destination cache
	metrics         *obs.Metrics
	pollInterval    time.Duration
	maxPollAttempts int
	unpricedPolicy  UnpricedPolicy
}

// NewListingService constructs a ListingService with its dependencies
// injected. Pass a nil hotelDao to run without the destination cache.
func NewListingService(
	hotelAPI hotelapi.HotelAPI,
	hotelDao *redis.RedisHotelDAO,
	metrics *obs.Metrics,
	pollInterval time.Duration,
	maxPollAttempts int) *ListingService {

	return &ListingService{
		hotelAPI:        hotelAPI,
		hotelDao:        hotelDao,
		metrics:         metrics,
		pollInterval:    pollInterval,
		maxPollAttempts: maxPollAttempts,
		unpricedPolicy:  DropUnpriced,
	}
}

// GetListings runs a destination search and returns the merged listings.
// Validation failures short-circuit before any upstream call. If either the
// hotel-list fetch or the price polling fails, the whole request fails and
// the sibling branch is cancelled; callers never receive a partial listing
// passed off as complete.
func (s *ListingService) GetListings(ctx context.Context, criteria *models.SearchCriteria) ([]models.Listing, error) {
	if err := criteria.Validate(config.SupportedCurrencies); err != nil {
		return nil, err
	}

	var (
		hotels []models.Hotel
		prices []models.HotelPrice
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hotels, err = s.fetchHotels(gctx, criteria.DestinationID)
		return err
	})
	g.Go(func() error {
		var err error
		prices, err = s.pollPrices(gctx, criteria)
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.IncUpstreamErrors()
		return nil, err
	}

	result := MergeListings(hotels, prices, s.unpricedPolicy)
	if result.Dropped > 0 {
		s.metrics.AddDroppedUnpriced(int64(result.Dropped))
		log.Printf("[ListingService] Dropped %d hotels without a price for destination %s",
			result.Dropped, criteria.DestinationID)
	}
	return result.Listings, nil
}

// GetHotelDetails fetches the full view of one hotel: static metadata and the
// polled room offers, concurrently. Both branches are required; this is the
// hard-fail detail path used by the details page.
func (s *ListingService) GetHotelDetails(ctx context.Context, hotelID string, criteria *models.SearchCriteria) (*models.HotelDetails, error) {
	if err := criteria.Validate(config.SupportedCurrencies); err != nil {
		return nil, err
	}

	var (
		hotel *models.Hotel
		rooms []models.Room
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		hotel, err = s.hotelAPI.GetHotel(gctx, hotelID)
		return err
	})
	g.Go(func() error {
		var err error
		rooms, err = poller.Poll(gctx, func(pctx context.Context) (poller.Page[models.Room], error) {
			s.metrics.AddPollAttempts(1)
			resp, err := s.hotelAPI.GetRoomPrices(pctx, hotelID, criteria)
			if err != nil {
				return poller.Page[models.Room]{}, err
			}
			return poller.Page[models.Room]{Items: resp.Rooms, Completed: resp.Completed}, nil
		}, poller.Options[models.Room]{
			Interval:    s.pollInterval,
			MaxAttempts: s.maxPollAttempts,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		s.metrics.IncUpstreamErrors()
		return nil, err
	}

	return &models.HotelDetails{
		ID:          hotel.ID,
		Name:        hotel.Name,
		Address:     hotel.Address,
		Description: hotel.Description,
		StarRating:  hotel.Rating,
		GuestRating: hotel.GuestRating(),
		Latitude:    hotel.Latitude,
		Longitude:   hotel.Longitude,
		Amenities:   hotel.AmenityNames(),
		ImageURL:    util.BuildImageURL(hotel),
		Currency:    criteria.Currency,
		Rooms:       rooms,
	}, nil
}

// GetDetailedListings runs GetListings and then enriches each listing with
// per-hotel detail fields. Enrichment is best-effort: a failed detail fetch
// leaves that listing's Detail nil instead of failing the batch. This
// asymmetry with the hard-fail listing path is deliberate.
func (s *ListingService) GetDetailedListings(ctx context.Context, criteria *models.SearchCriteria) ([]models.DetailedListing, error) {
	listings, err := s.GetListings(ctx, criteria)
	if err != nil {
		return nil, err
	}

	detailed := make([]models.DetailedListing, len(listings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.ENRICHMENT_MAX_CONCURRENCY)
	for i := range listings {
		i := i
		detailed[i] = models.DetailedListing{Listing: listings[i]}
		g.Go(func() error {
			hotel, err := s.hotelAPI.GetHotel(gctx, listings[i].ID)
			if err != nil {
				s.metrics.IncEnrichmentFailures()
				log.Printf("[ListingService] Detail enrichment failed for hotel %s: %v", listings[i].ID, err)
				return nil // degrade this listing, keep the batch
			}
			detailed[i].Detail = &models.ListingDetail{
				Description: hotel.Description,
				Latitude:    hotel.Latitude,
				Longitude:   hotel.Longitude,
				Amenities:   hotel.AmenityNames(),
			}
			return nil
		})
	}
	// Enrichment goroutines never return errors, Wait only joins them.
	_ = g.Wait()

	return detailed, nil
}

// fetchHotels loads the destination hotel list, preferring the cache when one
// is configured. Cache errors are misses, never failures.
func (s *ListingService) fetchHotels(ctx context.Context, destinationID string) ([]models.Hotel, error) {
	if s.hotelDao != nil {
		if hotels, err := s.hotelDao.GetDestinationHotels(destinationID); err == nil {
			s.metrics.IncCacheHits()
			return hotels, nil
		}
	}

	hotels, err := s.hotelAPI.ListHotels(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	if s.hotelDao != nil {
		if err := s.hotelDao.SetDestinationHotels(destinationID, hotels); err != nil {
			log.Printf("[ListingService] Failed to cache hotels for destination %s: %v", destinationID, err)
		}
	}
	return hotels, nil
}

// pollPrices drives the asynchronous price search to completion.
func (s *ListingService) pollPrices(ctx context.Context, criteria *models.SearchCriteria) ([]models.HotelPrice, error) {
	prices, err := poller.Poll(ctx, func(pctx context.Context) (poller.Page[models.HotelPrice], error) {
		s.metrics.AddPollAttempts(1)
		resp, err := s.hotelAPI.SearchPrices(pctx, criteria)
		if err != nil {
			return poller.Page[models.HotelPrice]{}, err
		}
		return poller.Page[models.HotelPrice]{Items: resp.Hotels, Completed: resp.Completed}, nil
	}, poller.Options[models.HotelPrice]{
		Interval:    s.pollInterval,
		MaxAttempts: s.maxPollAttempts,
	})

	var timeout *poller.TimeoutError
	if errors.As(err, &timeout) {
		log.Printf("[ListingService] Price search for destination %s timed out: %v", criteria.DestinationID, err)
	}
	return prices, err
}
