package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// todoRecord is the gorm mapping of entity.Todo. Seq keeps insertion order.
type todoRecord struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"column:id;size:36;uniqueIndex;not null"`
	Title     string    `gorm:"not null"`
	Completed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (todoRecord) TableName() string {
	return "todos"
}

func (record todoRecord) toEntity() *entity.Todo {
	return &entity.Todo{
		ID:        record.ID,
		Title:     record.Title,
		Completed: record.Completed,
		CreatedAt: entity.Timestamp(record.CreatedAt),
		UpdatedAt: entity.Timestamp(record.UpdatedAt),
	}
}

type GormTodoGateway struct {
	DB  *gorm.DB
	now func() time.Time
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db, now: time.Now}
}

// AutoMigrate creates or updates the todos table
func (gateway *GormTodoGateway) AutoMigrate(ctx context.Context) error {
	return gateway.DB.WithContext(ctx).AutoMigrate(&todoRecord{})
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context) ([]entity.Todo, error) {
	var records []todoRecord
	if err := gateway.DB.WithContext(ctx).Order("seq ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	results := make([]entity.Todo, 0, len(records))
	for _, record := range records {
		results = append(results, *record.toEntity())
	}
	return results, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, id string) (*entity.Todo, error) {
	var record todoRecord
	err := gateway.DB.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.toEntity(), nil
}

func (gateway *GormTodoGateway) Count(ctx context.Context) (int64, error) {
	var count int64
	err := gateway.DB.WithContext(ctx).Model(&todoRecord{}).Count(&count).Error
	return count, err
}

func (gateway *GormTodoGateway) Create(ctx context.Context, title string) (*entity.Todo, error) {
	todo := entity.NewTodo(title, gateway.now())

	record := todoRecord{
		ID:        todo.ID,
		Title:     todo.Title,
		Completed: todo.Completed,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
	if err := gateway.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (gateway *GormTodoGateway) UpdateByID(ctx context.Context, id string, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	var updated *entity.Todo

	err := gateway.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record todoRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		todo := record.toEntity()
		todo.Apply(dto.Title, dto.Completed, gateway.now())

		err = tx.Model(&todoRecord{}).Where("id = ?", id).Updates(map[string]any{
			"title":      todo.Title,
			"completed":  todo.Completed,
			"updated_at": todo.UpdatedAt,
		}).Error
		if err != nil {
			return err
		}

		updated = todo
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (gateway *GormTodoGateway) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	var records []todoRecord
	err := gateway.DB.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&records).Error
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0].toEntity(), nil
}

func (gateway *GormTodoGateway) DeleteAll(ctx context.Context) (int64, error) {
	result := gateway.DB.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&todoRecord{})
	return result.RowsAffected, result.Error
}
