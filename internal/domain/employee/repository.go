package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByRFIDToken(ctx context.Context, token string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error)
	ExistsByRFIDToken(ctx context.Context, token string, excludeID *string) (bool, error)
	ExistsByPositionID(ctx context.Context, positionID string) (bool, error)
	Count(ctx context.Context) (int, error)
}
