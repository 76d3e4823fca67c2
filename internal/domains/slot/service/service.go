package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"barbershop/config"
	"barbershop/infras/otel"
	"barbershop/internal/domains/slot/model/dto"
	"barbershop/internal/domains/slot/repository"
	"barbershop/shared"
	"barbershop/shared/cache"
	"barbershop/shared/constant"
	"barbershop/shared/failure"
	gModel "barbershop/shared/model"

	"github.com/rs/zerolog/log"
)

type Slot interface {
	GetByDate(ctx context.Context, date string) (dto.GetSlotsResponse, error)
	OpenTimes(ctx context.Context, date string) (dto.OpenTimesResponse, error)
}

type serviceImpl struct {
	repo  repository.Slot
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Slot, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Slot {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetByDate(ctx context.Context, date string) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := gModel.ParseDate(date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	details, err := s.repo.ListByDate(ctx, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	res.FromDetails(day.String(), details)

	return res, nil
}

// OpenTimes lists the distinct free start times of a day. Every slot write clears the cached lists.
func (s *serviceImpl) OpenTimes(ctx context.Context, date string) (res dto.OpenTimesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenTimes")
	defer scope.End()
	defer scope.TraceIfError(&err)

	day, err := gModel.ParseDate(date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyOpenTimes, day.String())

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for open times")

		return res, nil
	}

	times, err := s.repo.ListOpenTimes(ctx, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get open times")

		return res, fmt.Errorf("failed to get open times: %w", err)
	}

	res.Date = day.String()
	res.Times = make([]string, len(times))

	for i, start := range times {
		res.Times[i] = start.String()
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save open times to cache")
		}
	}()

	return res, nil
}
