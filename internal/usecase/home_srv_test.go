package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"realtor-listings/internal/data/entity"
	"realtor-listings/internal/data/repository"
	"realtor-listings/internal/dto/request"

	"go.uber.org/zap"
)

func seedHome(t *testing.T, repo *repository.Repository, realtorID int64, city string, price float64) *entity.Home {
	t.Helper()
	now := time.Now()
	home := &entity.Home{
		Base:              entity.Base{CreatedAt: now, UpdatedAt: now},
		RealtorID:         realtorID,
		Address:           "2345 William Str",
		City:              city,
		Price:             price,
		PropertyType:      entity.PropertyResidential,
		LandSize:          4444,
		NumberOfBedrooms:  3,
		NumberOfBathrooms: 2.5,
	}
	if err := repo.Home.Create(context.Background(), home); err != nil {
		t.Fatalf("seed home: %v", err)
	}
	return home
}

func TestHomeService_UpdateByOwner(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	home := seedHome(t, repo, 54, "Toronto", 1500000)

	newPrice := 1250000.0
	resp, err := svc.UpdateHome(context.Background(), home.ID, 54, &request.UpdateHomeRequest{
		Price: &newPrice,
	})
	if err != nil {
		t.Fatalf("update: unexpected error: %v", err)
	}
	if resp.Price != newPrice {
		t.Fatalf("expected price %v got %v", newPrice, resp.Price)
	}
	// Untouched fields survive a partial update
	if resp.City != "Toronto" {
		t.Fatalf("expected city Toronto got %s", resp.City)
	}

	stored, _ := repo.Home.FindByID(context.Background(), home.ID)
	if stored.Price != newPrice {
		t.Fatalf("expected stored price %v got %v", newPrice, stored.Price)
	}
}

func TestHomeService_UpdateByNonOwnerForbidden(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	home := seedHome(t, repo, 54, "Toronto", 1500000)

	newPrice := 1.0
	_, err := svc.UpdateHome(context.Background(), home.ID, 30, &request.UpdateHomeRequest{
		Price: &newPrice,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// No mutation happened
	stored, _ := repo.Home.FindByID(context.Background(), home.ID)
	if stored.Price != 1500000 {
		t.Fatalf("expected price unchanged, got %v", stored.Price)
	}
	if repo.Home.(*fakeHomeRepo).updates != 0 {
		t.Fatal("expected no update call on denied mutation")
	}
}

func TestHomeService_UpdateMissingHomeNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	newPrice := 1.0
	_, err := svc.UpdateHome(context.Background(), 999, 54, &request.UpdateHomeRequest{
		Price: &newPrice,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHomeService_DeleteCascades(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	home := seedHome(t, repo, 54, "Toronto", 1500000)
	ctx := context.Background()

	image := &entity.Image{URL: "https://img.example.com/1.jpg", HomeID: home.ID}
	if err := repo.Image.Create(ctx, image); err != nil {
		t.Fatalf("seed image: %v", err)
	}
	message := &entity.Message{Message: "Interested", HomeID: home.ID, RealtorID: 54, BuyerID: 7}
	if err := repo.Message.Create(ctx, message); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	if err := svc.DeleteHome(ctx, home.ID, 54); err != nil {
		t.Fatalf("delete: unexpected error: %v", err)
	}

	if stored, _ := repo.Home.FindByID(ctx, home.ID); stored != nil {
		t.Fatal("expected home removed")
	}
	if images, _ := repo.Image.FindByHomeID(ctx, home.ID); len(images) != 0 {
		t.Fatal("expected images removed with home")
	}
	if messages, _ := repo.Message.FindByHomeID(ctx, home.ID); len(messages) != 0 {
		t.Fatal("expected messages removed with home")
	}
}

func TestHomeService_DeleteByNonOwnerForbidden(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	home := seedHome(t, repo, 54, "Toronto", 1500000)

	if err := svc.DeleteHome(context.Background(), home.ID, 30); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if stored, _ := repo.Home.FindByID(context.Background(), home.ID); stored == nil {
		t.Fatal("expected home to survive denied delete")
	}
}

func TestHomeService_GetHomesFilters(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	seedHome(t, repo, 54, "Toronto", 1200000)
	seedHome(t, repo, 54, "Toronto", 2000000)
	seedHome(t, repo, 54, "Vancouver", 1300000)

	city := "Toronto"
	maxPrice := 1500000.0
	filter := repository.HomeFilter{City: &city, MaxPrice: &maxPrice}

	resp, err := svc.GetHomes(context.Background(), filter, &request.PaginatedRequest{Page: 1, PerPage: 10})
	if err != nil {
		t.Fatalf("get homes: unexpected error: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected 1 home, got %d", len(resp.Data))
	}
	if resp.Data[0].City != "Toronto" || resp.Data[0].Price != 1200000 {
		t.Fatalf("unexpected home in result: %+v", resp.Data[0])
	}
	if resp.Pagination.Total != 1 {
		t.Fatalf("expected total 1, got %d", resp.Pagination.Total)
	}
}

func TestHomeService_GetHomesEmptyNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	_, err := svc.GetHomes(context.Background(), repository.HomeFilter{}, &request.PaginatedRequest{Page: 1, PerPage: 10})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty result, got %v", err)
	}
}

func TestHomeService_CreateHomeOwnedByCaller(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	resp, err := svc.CreateHome(context.Background(), 54, &request.CreateHomeRequest{
		Address:           "111 Yellow Str",
		City:              "Vancouver",
		Price:             1250000,
		PropertyType:      "RESIDENTIAL",
		LandSize:          4444,
		NumberOfBedrooms:  2,
		NumberOfBathrooms: 2,
		Images: []request.ImageRequest{
			{URL: "https://img.example.com/1.jpg"},
			{URL: "https://img.example.com/2.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("create: unexpected error: %v", err)
	}

	if resp.RealtorID != 54 {
		t.Fatalf("expected owner 54 got %d", resp.RealtorID)
	}
	if len(resp.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(resp.Images))
	}

	stored, _ := repo.Home.FindByID(context.Background(), resp.ID)
	if stored == nil || stored.RealtorID != 54 {
		t.Fatalf("expected stored home owned by 54, got %+v", stored)
	}
}

func TestHomeService_Inquire(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())

	buyer := &entity.User{
		Name:  "Marko",
		Email: "buyer@example.com",
		Phone: "555 555 5555",
		Role:  entity.RoleBuyer,
	}
	if err := repo.User.Create(context.Background(), buyer); err != nil {
		t.Fatalf("seed buyer: %v", err)
	}

	home := seedHome(t, repo, 54, "Toronto", 1500000)

	resp, err := svc.Inquire(context.Background(), home.ID, buyer.ID, &request.InquireRequest{
		Message: "Is this still available?",
	})
	if err != nil {
		t.Fatalf("inquire: unexpected error: %v", err)
	}
	if resp.Buyer.Email != "buyer@example.com" {
		t.Fatalf("expected buyer info attached, got %+v", resp.Buyer)
	}

	messages, _ := repo.Message.FindByHomeID(context.Background(), home.ID)
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	// Recipient comes from the stored home, not from the request
	if messages[0].RealtorID != 54 {
		t.Fatalf("expected message addressed to realtor 54, got %d", messages[0].RealtorID)
	}

	if _, err := svc.Inquire(context.Background(), 999, buyer.ID, &request.InquireRequest{Message: "hi"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing home, got %v", err)
	}
}

func TestHomeService_GetHomeMessagesOwnership(t *testing.T) {
	repo := newFakeRepository()
	svc := NewHomeService(repo, zap.NewNop())
	ctx := context.Background()

	buyer := &entity.User{Name: "Marko", Email: "buyer@example.com", Role: entity.RoleBuyer}
	if err := repo.User.Create(ctx, buyer); err != nil {
		t.Fatalf("seed buyer: %v", err)
	}

	home := seedHome(t, repo, 54, "Toronto", 1500000)
	if _, err := svc.Inquire(ctx, home.ID, buyer.ID, &request.InquireRequest{Message: "Interested"}); err != nil {
		t.Fatalf("inquire: %v", err)
	}

	messages, err := svc.GetHomeMessages(ctx, home.ID, 54)
	if err != nil {
		t.Fatalf("get messages: unexpected error: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Buyer.Email != "buyer@example.com" {
		t.Fatalf("expected buyer info, got %+v", messages[0].Buyer)
	}

	// Another realtor is denied
	if _, err := svc.GetHomeMessages(ctx, home.ID, 30); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// A caller whose id happens to equal the home id is still denied: the
	// comparison runs against the stored owner id, not the home id
	if home.ID != 54 {
		if _, err := svc.GetHomeMessages(ctx, home.ID, home.ID); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden for caller id == home id, got %v", err)
		}
	}
}
