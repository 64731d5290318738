package submission

import (
	"context"
	"strings"

	"github.com/muhammadheryan/supplier-sourcing/constant"
	"github.com/muhammadheryan/supplier-sourcing/model"
	submissionrepo "github.com/muhammadheryan/supplier-sourcing/repository/submission"
	txrepo "github.com/muhammadheryan/supplier-sourcing/repository/tx"
	"github.com/muhammadheryan/supplier-sourcing/thirdparty/rabbitmq"
	"github.com/muhammadheryan/supplier-sourcing/utils/errors"
	"github.com/muhammadheryan/supplier-sourcing/utils/logger"
	"github.com/muhammadheryan/supplier-sourcing/utils/metrics"
	validatorx "github.com/muhammadheryan/supplier-sourcing/utils/validator"
	"go.uber.org/zap"
)

type SubmissionApp interface {
	SubmitForm(ctx context.Context, req *model.SubmissionRequest) (*model.SubmitResponse, error)
	ListSubmissions(ctx context.Context) ([]model.SubmissionResponse, error)
}

type submissionAppImpl struct {
	txRepo         txrepo.TxRepository
	submissionRepo submissionrepo.SubmissionRepository
	publisher      rabbitmq.EventPublisher
}

// NewSubmissionApp builds the submission app. publisher may be nil.
func NewSubmissionApp(txRepo txrepo.TxRepository, submissionRepo submissionrepo.SubmissionRepository, publisher rabbitmq.EventPublisher) SubmissionApp {
	return &submissionAppImpl{txRepo: txRepo, submissionRepo: submissionRepo, publisher: publisher}
}

func (s *submissionAppImpl) SubmitForm(ctx context.Context, req *model.SubmissionRequest) (*model.SubmitResponse, error) {
	log := logger.FromContext(ctx)

	trimRequest(req)
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.Describe(err))
	}

	entity := &model.SubmissionEntity{
		SupplierName: req.SupplierName,
		ProductInfo:  req.ProductInfo,
		ProductURL:   req.ProductURL,
		Category:     req.Category,
		Quantity:     int64(*req.Quantity),
		Timeline:     req.Timeline,
		Location:     req.Location,
		RequiredFor:  req.RequiredFor,
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		log.Error("[SubmitForm] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrSubmissionSave)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.submissionRepo.InsertTx(ctx, tx, entity)
	if err != nil {
		log.Error("[SubmitForm] insert submission", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrSubmissionSave)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		log.Error("[SubmitForm] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrSubmissionSave)
	}
	committed = true
	entity.ID = id
	metrics.RecordSubmission()

	if s.publisher != nil {
		evt := model.SubmissionCreatedEvent{
			ID:           entity.ID,
			SupplierName: entity.SupplierName,
			Category:     entity.Category,
			Quantity:     entity.Quantity,
			Location:     entity.Location,
		}
		if err := s.publisher.PublishSubmissionCreated(ctx, evt); err != nil {
			log.Error("[SubmitForm] publish submission created", zap.Uint64("id", id), zap.String("error", err.Error()))
		}
	}

	return &model.SubmitResponse{
		Message: constant.SubmissionSuccessMessage,
		ID:      id,
	}, nil
}

func (s *submissionAppImpl) ListSubmissions(ctx context.Context) ([]model.SubmissionResponse, error) {
	rows, err := s.submissionRepo.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[ListSubmissions] list submissions", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrSubmissionList)
	}

	res := make([]model.SubmissionResponse, 0, len(rows))
	for _, row := range rows {
		res = append(res, model.SubmissionResponse{
			ID:           row.ID,
			SupplierName: row.SupplierName,
			ProductInfo:  row.ProductInfo,
			ProductURL:   row.ProductURL,
			Category:     row.Category,
			Quantity:     row.Quantity,
			Timeline:     row.Timeline,
			Location:     row.Location,
			RequiredFor:  row.RequiredFor,
		})
	}
	return res, nil
}

// trimRequest strips surrounding whitespace so blank fields fail validation,
// and turns an empty product URL into NULL.
func trimRequest(req *model.SubmissionRequest) {
	req.SupplierName = strings.TrimSpace(req.SupplierName)
	req.ProductInfo = strings.TrimSpace(req.ProductInfo)
	req.Category = strings.TrimSpace(req.Category)
	req.Timeline = strings.TrimSpace(req.Timeline)
	req.Location = strings.TrimSpace(req.Location)
	req.RequiredFor = strings.TrimSpace(req.RequiredFor)
	if req.ProductURL != nil {
		u := strings.TrimSpace(*req.ProductURL)
		if u == "" {
			req.ProductURL = nil
		} else {
			req.ProductURL = &u
		}
	}
}
