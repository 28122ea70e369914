package repository

import (
	"context"
	"fmt"

	"realtor-listings/internal/data/entity"
	"realtor-listings/pkg/database"

	"go.uber.org/zap"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindByHomeID(ctx context.Context, homeID int64) ([]*entity.Message, error)
	DeleteByHomeID(ctx context.Context, homeID int64) error
}

type messageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMessageRepository(db database.PgxIface, log *zap.Logger) MessageRepository {
	return &messageRepository{
		db:  db,
		log: log.With(zap.String("repository", "message")),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	query := `
		INSERT INTO messages (message, home_id, realtor_id, buyer_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		message.Message,
		message.HomeID,
		message.RealtorID,
		message.BuyerID,
		message.CreatedAt,
	).Scan(&message.ID)

	if err != nil {
		r.log.Error("Failed to create message",
			zap.Error(err),
			zap.Int64("home_id", message.HomeID),
			zap.Int64("buyer_id", message.BuyerID),
		)
		return fmt.Errorf("create message for home %d: %w", message.HomeID, err)
	}

	return nil
}

func (r *messageRepository) FindByHomeID(ctx context.Context, homeID int64) ([]*entity.Message, error) {
	query := `
		SELECT id, message, home_id, realtor_id, buyer_id, created_at
		FROM messages
		WHERE home_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, homeID)
	if err != nil {
		r.log.Error("Failed to find messages by home",
			zap.Error(err),
			zap.Int64("home_id", homeID),
		)
		return nil, fmt.Errorf("find messages for home %d: %w", homeID, err)
	}
	defer rows.Close()

	var messages []*entity.Message
	for rows.Next() {
		var message entity.Message
		err := rows.Scan(
			&message.ID,
			&message.Message,
			&message.HomeID,
			&message.RealtorID,
			&message.BuyerID,
			&message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan message row", zap.Error(err))
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate messages rows: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) DeleteByHomeID(ctx context.Context, homeID int64) error {
	query := `DELETE FROM messages WHERE home_id = $1`

	_, err := r.db.Exec(ctx, query, homeID)
	if err != nil {
		r.log.Error("Failed to delete messages by home",
			zap.Error(err),
			zap.Int64("home_id", homeID),
		)
		return fmt.Errorf("delete messages for home %d: %w", homeID, err)
	}

	return nil
}
