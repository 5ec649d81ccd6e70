package sample

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/sample"
)

// SampleResponse 测试数据视图
type SampleResponse struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

func toSampleResponse(s *sample.Sample) *SampleResponse {
	return &SampleResponse{
		ID:        s.ID,
		Text:      s.Text,
		CreatedAt: s.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ListSamplesUseCase struct {
	service *sample.Service
}

func NewListSamplesUseCase(service *sample.Service) *ListSamplesUseCase {
	return &ListSamplesUseCase{service: service}
}

func (uc *ListSamplesUseCase) Execute(ctx context.Context) ([]*SampleResponse, error) {
	samples, err := uc.service.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*SampleResponse, len(samples))
	for i, s := range samples {
		list[i] = toSampleResponse(s)
	}
	return list, nil
}

type GetSampleUseCase struct {
	service *sample.Service
}

func NewGetSampleUseCase(service *sample.Service) *GetSampleUseCase {
	return &GetSampleUseCase{service: service}
}

// Execute 不存在返回ErrSampleNotFound(404)
func (uc *GetSampleUseCase) Execute(ctx context.Context, id uint) (*SampleResponse, error) {
	s, err := uc.service.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSampleResponse(s), nil
}

type CreateSampleUseCase struct {
	service *sample.Service
}

func NewCreateSampleUseCase(service *sample.Service) *CreateSampleUseCase {
	return &CreateSampleUseCase{service: service}
}

func (uc *CreateSampleUseCase) Execute(ctx context.Context, text string) (*SampleResponse, error) {
	s, err := uc.service.Create(ctx, text)
	if err != nil {
		return nil, err
	}
	return toSampleResponse(s), nil
}
