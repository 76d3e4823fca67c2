package service

import (
	"context"
	"fmt"

	appointmentModel "barbershop/internal/domains/appointment/model"
	"barbershop/internal/domains/booking/model"
	"barbershop/internal/domains/booking/model/dto"
	slotModel "barbershop/internal/domains/slot/model"
	"barbershop/shared"
	"barbershop/shared/constant"
	gDto "barbershop/shared/dto"

	"github.com/rs/zerolog/log"
)

// RepairOrphans frees slots still flagged as booked after their appointment reference was cleared.
// Running it again right away repairs nothing.
func (s *serviceImpl) RepairOrphans(ctx context.Context) (res dto.RepairResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RepairOrphans")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res.Repaired, err = s.slotRepo.RepairOrphans(ctx, shared.Actor(ctx))
	if err != nil {
		log.Error().Err(err).Msg("failed to repair orphaned slots")

		return res, fmt.Errorf("failed to repair orphaned slots: %w", err)
	}

	log.Info().Int64("repaired", res.Repaired).Msg("orphaned slots repaired")

	if res.Repaired > 0 {
		shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyOpenTimes)
	}

	return res, nil
}

// Audit reports every disagreement between slots and appointments without fixing anything.
func (s *serviceImpl) Audit(ctx context.Context) (res dto.AuditResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Audit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	appointments, err := s.appointmentRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  appointmentModel.FieldDate + "," + appointmentModel.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	slots, err := s.slotRepo.GetAll(ctx, gDto.QueryParams{
		SortBy:  slotModel.FieldDate + "," + slotModel.FieldStartTime,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get slots")

		return res, fmt.Errorf("failed to get slots: %w", err)
	}

	issues := model.Audit(appointments, slots)
	if len(issues) > 0 {
		log.Warn().Int("issues", len(issues)).Msg("slot and appointment tables disagree")
	}

	res.FromModels(issues)

	return res, nil
}
