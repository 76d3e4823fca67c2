package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"barbershop/config"
	"barbershop/infras/otel"
	"barbershop/infras/postgres"
	"barbershop/internal/domains/availability/model"
	"barbershop/internal/domains/availability/model/dto"
	"barbershop/internal/domains/availability/repository"
	"barbershop/internal/domains/slot/generator"
	slotModel "barbershop/internal/domains/slot/model"
	slotRepo "barbershop/internal/domains/slot/repository"
	"barbershop/shared"
	"barbershop/shared/cache"
	"barbershop/shared/constant"
	gDto "barbershop/shared/dto"
	"barbershop/shared/failure"
	"barbershop/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Availability interface {
	Create(ctx context.Context, req dto.CreateAvailabilityRequest) (dto.CreateAvailabilityResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetAvailabilitiesResponse, error)
	Delete(ctx context.Context, id string) error
	OpenDates(ctx context.Context) (dto.OpenDatesResponse, error)
}

type serviceImpl struct {
	repo       repository.Availability
	slotRepo   slotRepo.Slot
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Availability,
	slotRepo slotRepo.Slot,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		repo:       repo,
		slotRepo:   slotRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Create stores the window and the slots generated from it together.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAvailabilityRequest) (res dto.CreateAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	availability, err := req.ToModel(shared.Actor(ctx))
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	interval := req.IntervalMinutes
	if interval == 0 {
		interval = s.cfg.Booking.SlotIntervalMinutes
	}

	if interval == 0 {
		interval = generator.DefaultIntervalMinutes
	}

	intervals, err := generator.Generate(availability.Date, availability.StartTime, availability.EndTime, interval)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	slots := make([]slotModel.Slot, len(intervals))
	for i, iv := range intervals {
		slots[i] = slotModel.Slot{
			ID:             uuid.NewString(),
			AvailabilityID: &availability.ID,
			Date:           iv.Date,
			StartTime:      iv.Start,
			EndTime:        iv.End,
			Metadata:       availability.Metadata,
		}
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Insert(ctx, availability); err != nil {
			log.Error().Err(err).Msg("failed to create availability")

			return fmt.Errorf("failed to create availability: %w", err)
		}

		if err := s.slotRepo.InsertBulk(ctx, slots); err != nil {
			log.Error().Err(err).Msg("failed to create slots")

			return s.undoCreate(ctx, availability.ID, fmt.Errorf("failed to create slots: %w", err))
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyOpenDates)
	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyOpenTimes)

	res.FromModel(availability)
	res.SlotsCreated = len(slots)

	return res, nil
}

// undoCreate drops a window whose slots could not be written outside a transaction.
func (s *serviceImpl) undoCreate(ctx context.Context, id string, cause error) error {
	if s.transactor.Atomic() {
		return cause
	}

	if _, err := s.repo.DeleteCount(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("availability_id", id).Msg("failed to remove availability without slots")
	}

	return cause
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetAvailabilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if params.SortBy == constant.Empty {
		params.SortBy = model.FieldDate + "," + model.FieldStartTime
		params.SortDir = gDto.SortDirAsc
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get availabilities")

		return res, fmt.Errorf("failed to get availabilities: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// Delete removes the window only. Its slots stay bookable with the reference cleared.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		detached, err := s.slotRepo.DetachAvailability(ctx, id, shared.Actor(ctx))
		if err != nil {
			log.Error().Err(err).Str("availability_id", id).Msg("failed to detach slots")

			return fmt.Errorf("failed to detach slots: %w", err)
		}

		deleted, err := s.repo.DeleteCount(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to delete availability")

			return fmt.Errorf("failed to delete availability: %w", err)
		}

		if deleted == 0 {
			return failure.NotFound("availability not found") // nolint:wrapcheck
		}

		scope.SetAttribute("slots.detached", detached)

		return nil
	})
	if err != nil {
		return err
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyOpenDates)

	return nil
}

func (s *serviceImpl) OpenDates(ctx context.Context) (res dto.OpenDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenDates")
	defer scope.End()
	defer scope.TraceIfError(&err)

	today := timezone.Today()
	cacheKey := shared.BuildCacheKey(constant.CacheKeyOpenDates, today.String())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for open dates")

		return res, nil
	}

	dates, err := s.repo.ListOpenDates(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get open dates")

		return res, fmt.Errorf("failed to get open dates: %w", err)
	}

	res.Dates = make([]string, len(dates))
	for i, date := range dates {
		res.Dates[i] = date.String()
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save open dates to cache")
		}
	}()

	return res, nil
}

