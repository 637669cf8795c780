package service

import (
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/pkg/sendGrid"
)

type ProductRequestService interface {
	Create(ctx context.Context, req *models.CreateProductRequestRequest) (*models.ProductRequest, error)
	Get(ctx context.Context, id int64) (*models.ProductRequest, error)
	List(ctx context.Context, page, size int) (*models.PaginatedResponse, error)
	ListByVariant(ctx context.Context, variantID int64) ([]*models.ProductRequest, error)
	NotifyVariant(ctx context.Context, variantID int64) (int, error)
}

type productRequestService struct {
	requests repository.ProductRequestRepository
	variants repository.VariantRepository
	email    sendGrid.EmailService
}

func NewProductRequestService(requests repository.ProductRequestRepository, variants repository.VariantRepository, email sendGrid.EmailService) ProductRequestService {
	return &productRequestService{requests: requests, variants: variants, email: email}
}

func (s *productRequestService) Create(ctx context.Context, req *models.CreateProductRequestRequest) (*models.ProductRequest, error) {
	if _, err := s.variant(ctx, req.VariantID); err != nil {
		return nil, err
	}

	request := &models.ProductRequest{VariantID: req.VariantID, Email: req.Email}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, errors.DatabaseError("Failed to create product request").WithError(err)
	}

	return request, nil
}

func (s *productRequestService) Get(ctx context.Context, id int64) (*models.ProductRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundError("Product request not found").WithError(err)
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product request").WithError(err)
	}

	return request, nil
}

func (s *productRequestService) List(ctx context.Context, page, size int) (*models.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 10
	}

	requests, total, err := s.requests.List(ctx, page, size)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list product requests").WithError(err)
	}

	return models.NewPaginatedResponse(requests, total, page, size), nil
}

func (s *productRequestService) ListByVariant(ctx context.Context, variantID int64) ([]*models.ProductRequest, error) {
	requests, err := s.requests.ListByVariant(ctx, variantID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list product requests").WithError(err)
	}

	return requests, nil
}

// NotifyVariant emails everyone who asked about the variant and returns how many
// emails were accepted. Individual send failures are logged and skipped.
func (s *productRequestService) NotifyVariant(ctx context.Context, variantID int64) (int, error) {
	logger := middleware.LoggerFromContext(ctx)

	variant, err := s.variant(ctx, variantID)
	if err != nil {
		return 0, err
	}

	requests, err := s.ListByVariant(ctx, variantID)
	if err != nil {
		return 0, err
	}

	notified := 0
	for _, request := range requests {
		err := s.email.Send(ctx, &models.EmailNotificationRequest{
			To:      request.Email,
			Subject: fmt.Sprintf("%s is back in stock", variant.SKU),
			Content: fmt.Sprintf("Good news! %s (%s) is available again.", variant.Description, variant.SKU),
		})
		if err != nil {
			logger.Warn("Failed to send product request email",
				slog.Int64("requestId", request.ID),
				slog.String("error", err.Error()))
			continue
		}

		notified++
	}

	if notified == 0 && len(requests) > 0 {
		return 0, errors.ThirdPartyError("Failed to send notification emails")
	}

	logger.Info("Product requesters notified", slog.Int64("variantId", variantID), slog.Int("notified", notified), slog.Int("requests", len(requests)))

	return notified, nil
}

func (s *productRequestService) variant(ctx context.Context, variantID int64) (*models.ProductVariant, error) {
	variant, err := s.variants.GetByID(ctx, variantID)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundError(fmt.Sprintf("Product variant %d not found", variantID)).WithError(err)
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch product variant").WithError(err)
	}

	return variant, nil
}
