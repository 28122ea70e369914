package usecase

import (
	"context"
	"fmt"
	"time"

	"realtor-listings/internal/data/entity"
	"realtor-listings/internal/data/repository"
	"realtor-listings/internal/dto/request"
	"realtor-listings/internal/dto/response"
	"realtor-listings/pkg/utils"

	"go.uber.org/zap"
)

type HomeService interface {
	GetHomes(ctx context.Context, filter repository.HomeFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.HomeResponse], error)
	GetHomeByID(ctx context.Context, homeID int64) (*response.HomeResponse, error)
	CreateHome(ctx context.Context, realtorID int64, req *request.CreateHomeRequest) (*response.HomeResponse, error)
	UpdateHome(ctx context.Context, homeID, callerID int64, req *request.UpdateHomeRequest) (*response.HomeResponse, error)
	DeleteHome(ctx context.Context, homeID, callerID int64) error
	Inquire(ctx context.Context, homeID, buyerID int64, req *request.InquireRequest) (*response.MessageResponse, error)
	GetHomeMessages(ctx context.Context, homeID, callerID int64) ([]response.MessageResponse, error)
}

type homeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHomeService(repo *repository.Repository, log *zap.Logger) HomeService {
	return &homeService{
		repo: repo,
		log:  log.With(zap.String("service", "home")),
	}
}

func (s *homeService) GetHomes(ctx context.Context, filter repository.HomeFilter, page *request.PaginatedRequest) (*response.PaginatedResponse[response.HomeResponse], error) {
	limit := page.Limit()
	offset := page.Offset()

	homes, err := s.repo.Home.FindAll(ctx, filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to get homes",
			zap.Error(err),
			zap.Int("page", page.Page),
			zap.Int("per_page", page.PerPage),
		)
		return nil, fmt.Errorf("get homes: %w", err)
	}

	if len(homes) == 0 {
		return nil, fmt.Errorf("%w: no homes matched the given filters", ErrNotFound)
	}

	total, err := s.repo.Home.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count homes", zap.Error(err))
		return nil, fmt.Errorf("count homes: %w", err)
	}

	// Attach images per home
	homeResponses := make([]response.HomeResponse, len(homes))
	for i, home := range homes {
		images, err := s.repo.Image.FindByHomeID(ctx, home.ID)
		if err != nil {
			s.log.Warn("Failed to get images for home",
				zap.Error(err),
				zap.Int64("home_id", home.ID),
			)
		}
		homeResponses[i] = response.HomeToResponse(home, images)
	}

	s.log.Info("Homes retrieved",
		zap.Int("count", len(homes)),
		zap.Int64("total", total),
		zap.Int("page", page.Page),
	)

	return response.NewPaginatedResponse(homeResponses, page.Page, page.PerPage, total), nil
}

func (s *homeService) GetHomeByID(ctx context.Context, homeID int64) (*response.HomeResponse, error) {
	home, err := s.repo.Home.FindByID(ctx, homeID)
	if err != nil {
		s.log.Error("Failed to get home by ID", zap.Error(err), zap.Int64("home_id", homeID))
		return nil, fmt.Errorf("get home by id: %w", err)
	}
	if home == nil {
		return nil, fmt.Errorf("%w: home %d", ErrNotFound, homeID)
	}

	images, err := s.repo.Image.FindByHomeID(ctx, home.ID)
	if err != nil {
		s.log.Warn("Failed to get images for home",
			zap.Error(err),
			zap.Int64("home_id", home.ID),
		)
	}

	resp := response.HomeToResponse(home, images)
	return &resp, nil
}

func (s *homeService) CreateHome(ctx context.Context, realtorID int64, req *request.CreateHomeRequest) (*response.HomeResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create home validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Create home owned by the caller
	now := time.Now()
	home := &entity.Home{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		RealtorID:         realtorID,
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		PropertyType:      entity.PropertyType(req.PropertyType),
		LandSize:          req.LandSize,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
	}

	if err := s.repo.Home.Create(ctx, home); err != nil {
		s.log.Error("Failed to create home", zap.Error(err), zap.Int64("realtor_id", realtorID))
		return nil, fmt.Errorf("create home: %w", err)
	}

	// 3. Attach images
	images := make([]*entity.Image, 0, len(req.Images))
	for _, imageReq := range req.Images {
		image := &entity.Image{
			BaseSimple: entity.BaseSimple{CreatedAt: now},
			URL:        imageReq.URL,
			HomeID:     home.ID,
		}
		if err := s.repo.Image.Create(ctx, image); err != nil {
			s.log.Error("Failed to create image",
				zap.Error(err),
				zap.Int64("home_id", home.ID),
			)
			return nil, fmt.Errorf("create image: %w", err)
		}
		images = append(images, image)
	}

	s.log.Info("Home created",
		zap.Int64("home_id", home.ID),
		zap.Int64("realtor_id", realtorID),
		zap.String("city", home.City))

	resp := response.HomeToResponse(home, images)
	return &resp, nil
}

func (s *homeService) UpdateHome(ctx context.Context, homeID, callerID int64, req *request.UpdateHomeRequest) (*response.HomeResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update home validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Ownership check against the stored record
	home, err := s.ownedHome(ctx, homeID, callerID)
	if err != nil {
		return nil, err
	}

	// 3. Apply only the fields present in the request
	if req.Address != nil {
		home.Address = *req.Address
	}
	if req.City != nil {
		home.City = *req.City
	}
	if req.Price != nil {
		home.Price = *req.Price
	}
	if req.PropertyType != nil {
		home.PropertyType = entity.PropertyType(*req.PropertyType)
	}
	if req.LandSize != nil {
		home.LandSize = *req.LandSize
	}
	if req.NumberOfBedrooms != nil {
		home.NumberOfBedrooms = *req.NumberOfBedrooms
	}
	if req.NumberOfBathrooms != nil {
		home.NumberOfBathrooms = *req.NumberOfBathrooms
	}
	home.UpdatedAt = time.Now()

	if err := s.repo.Home.Update(ctx, home); err != nil {
		s.log.Error("Failed to update home", zap.Error(err), zap.Int64("home_id", homeID))
		return nil, fmt.Errorf("update home: %w", err)
	}

	s.log.Info("Home updated",
		zap.Int64("home_id", homeID),
		zap.Int64("realtor_id", callerID))

	images, err := s.repo.Image.FindByHomeID(ctx, home.ID)
	if err != nil {
		s.log.Warn("Failed to get images for home",
			zap.Error(err),
			zap.Int64("home_id", home.ID),
		)
	}

	resp := response.HomeToResponse(home, images)
	return &resp, nil
}

func (s *homeService) DeleteHome(ctx context.Context, homeID, callerID int64) error {
	// Ownership check against the stored record
	if _, err := s.ownedHome(ctx, homeID, callerID); err != nil {
		return err
	}

	// Remove dependents before the home itself
	if err := s.repo.Image.DeleteByHomeID(ctx, homeID); err != nil {
		s.log.Error("Failed to delete home images", zap.Error(err), zap.Int64("home_id", homeID))
		return fmt.Errorf("delete home images: %w", err)
	}
	if err := s.repo.Message.DeleteByHomeID(ctx, homeID); err != nil {
		s.log.Error("Failed to delete home messages", zap.Error(err), zap.Int64("home_id", homeID))
		return fmt.Errorf("delete home messages: %w", err)
	}

	if err := s.repo.Home.Delete(ctx, homeID); err != nil {
		s.log.Error("Failed to delete home", zap.Error(err), zap.Int64("home_id", homeID))
		return fmt.Errorf("delete home: %w", err)
	}

	s.log.Info("Home deleted",
		zap.Int64("home_id", homeID),
		zap.Int64("realtor_id", callerID))

	return nil
}

func (s *homeService) Inquire(ctx context.Context, homeID, buyerID int64, req *request.InquireRequest) (*response.MessageResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Inquire validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. The home must exist; its stored owner becomes the recipient
	home, err := s.repo.Home.FindByID(ctx, homeID)
	if err != nil {
		s.log.Error("Failed to find home for inquiry", zap.Error(err), zap.Int64("home_id", homeID))
		return nil, fmt.Errorf("find home: %w", err)
	}
	if home == nil {
		return nil, fmt.Errorf("%w: home %d", ErrNotFound, homeID)
	}

	// 3. Create the message
	message := &entity.Message{
		BaseSimple: entity.BaseSimple{CreatedAt: time.Now()},
		Message:    req.Message,
		HomeID:     home.ID,
		RealtorID:  home.RealtorID,
		BuyerID:    buyerID,
	}

	if err := s.repo.Message.Create(ctx, message); err != nil {
		s.log.Error("Failed to create inquiry",
			zap.Error(err),
			zap.Int64("home_id", homeID),
			zap.Int64("buyer_id", buyerID),
		)
		return nil, fmt.Errorf("create inquiry: %w", err)
	}

	s.log.Info("Inquiry sent",
		zap.Int64("home_id", homeID),
		zap.Int64("buyer_id", buyerID),
		zap.Int64("realtor_id", home.RealtorID))

	buyer, err := s.repo.User.FindByID(ctx, buyerID)
	if err != nil {
		s.log.Warn("Failed to load buyer for inquiry response",
			zap.Error(err),
			zap.Int64("buyer_id", buyerID),
		)
	}

	resp := response.MessageToResponse(message, buyer)
	return &resp, nil
}

func (s *homeService) GetHomeMessages(ctx context.Context, homeID, callerID int64) ([]response.MessageResponse, error) {
	// Ownership check uses the home's stored realtor_id, never the home id
	// itself
	if _, err := s.ownedHome(ctx, homeID, callerID); err != nil {
		return nil, err
	}

	messages, err := s.repo.Message.FindByHomeID(ctx, homeID)
	if err != nil {
		s.log.Error("Failed to get home messages", zap.Error(err), zap.Int64("home_id", homeID))
		return nil, fmt.Errorf("get home messages: %w", err)
	}

	messageResponses := make([]response.MessageResponse, len(messages))
	for i, message := range messages {
		buyer, err := s.repo.User.FindByID(ctx, message.BuyerID)
		if err != nil {
			s.log.Warn("Failed to load buyer for message",
				zap.Error(err),
				zap.Int64("buyer_id", message.BuyerID),
			)
		}
		messageResponses[i] = response.MessageToResponse(message, buyer)
	}

	s.log.Info("Home messages retrieved",
		zap.Int64("home_id", homeID),
		zap.Int("count", len(messages)))

	return messageResponses, nil
}

// ==================== HELPER METHODS ====================

// ownedHome loads the authoritative record and confirms the caller owns it.
// The owner id always comes from the store, never from the request.
func (s *homeService) ownedHome(ctx context.Context, homeID, callerID int64) (*entity.Home, error) {
	home, err := s.repo.Home.FindByID(ctx, homeID)
	if err != nil {
		s.log.Error("Failed to find home for ownership check",
			zap.Error(err),
			zap.Int64("home_id", homeID),
		)
		return nil, fmt.Errorf("find home: %w", err)
	}
	if home == nil {
		return nil, fmt.Errorf("%w: home %d", ErrNotFound, homeID)
	}

	if home.RealtorID != callerID {
		s.log.Warn("Ownership check failed",
			zap.Int64("home_id", homeID),
			zap.Int64("owner_id", home.RealtorID),
			zap.Int64("caller_id", callerID),
		)
		return nil, fmt.Errorf("%w: home %d is not owned by caller", ErrForbidden, homeID)
	}

	return home, nil
}
