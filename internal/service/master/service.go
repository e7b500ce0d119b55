package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/absensi-rfid/attendance-backend-go/internal/domain/employee"
	"github.com/absensi-rfid/attendance-backend-go/internal/domain/master/position"
	"github.com/absensi-rfid/attendance-backend-go/internal/pkg/database"
	"github.com/absensi-rfid/attendance-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type MasterService interface {
	// Position operations
	CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error)
	GetPosition(ctx context.Context, id string) (position.PositionResponse, error)
	ListPositions(ctx context.Context) ([]position.PositionResponse, error)
	UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error)
	DeletePosition(ctx context.Context, id string) error
}

type masterServiceImpl struct {
	db           *database.DB
	positionRepo position.PositionRepository
	employeeRepo employee.EmployeeRepository
}

func NewMasterService(db *database.DB, positionRepo position.PositionRepository, employeeRepo employee.EmployeeRepository) MasterService {
	return &masterServiceImpl{
		db:           db,
		positionRepo: positionRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *masterServiceImpl) CreatePosition(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	exists, err := s.positionRepo.ExistsByName(ctx, req.Name, nil)
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to check position name: %w", err)
	}
	if exists {
		return position.PositionResponse{}, position.ErrPositionNameExists
	}

	created, err := s.positionRepo.Create(ctx, position.Position{Name: req.Name})
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}

	return position.PositionResponse{
		ID:   created.ID,
		Name: created.Name,
	}, nil
}

func (s *masterServiceImpl) GetPosition(ctx context.Context, id string) (position.PositionResponse, error) {
	entity, err := s.positionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.PositionResponse{}, position.ErrPositionNotFound
		}
		return position.PositionResponse{}, err
	}

	return position.PositionResponse{
		ID:   entity.ID,
		Name: entity.Name,
	}, nil
}

func (s *masterServiceImpl) ListPositions(ctx context.Context) ([]position.PositionResponse, error) {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// If no positions found, return empty list instead of error
	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, position.PositionResponse{
			ID:   p.ID,
			Name: p.Name,
		})
	}

	return responses, nil
}

func (s *masterServiceImpl) UpdatePosition(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	exists, err := s.positionRepo.ExistsByName(ctx, req.Name, &req.ID)
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to check position name: %w", err)
	}
	if exists {
		return position.PositionResponse{}, position.ErrPositionNameExists
	}

	updated, err := s.positionRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.PositionResponse{}, position.ErrPositionNotFound
		}
		return position.PositionResponse{}, err
	}

	return position.PositionResponse{
		ID:   updated.ID,
		Name: updated.Name,
	}, nil
}

// DeletePosition removes a position unless employees still hold it. The
// in-use check and the delete run in one transaction so an assignment
// committed in between cannot orphan an employee's position reference.
func (s *masterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	if _, err := s.positionRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return position.ErrPositionNotFound
		}
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		inUse, err := s.employeeRepo.ExistsByPositionID(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to check position usage: %w", err)
		}
		if inUse {
			return position.ErrPositionInUse
		}

		return s.positionRepo.Delete(txCtx, id)
	})
}
