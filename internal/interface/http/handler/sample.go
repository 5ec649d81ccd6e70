package handler

import (
	"github.com/gin-gonic/gin"

	appsample "github.com/xiebiao/bookshop/internal/application/sample"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// SampleHandler /api/v1/tests 冒烟测试接口
type SampleHandler struct {
	list   *appsample.ListSamplesUseCase
	get    *appsample.GetSampleUseCase
	create *appsample.CreateSampleUseCase
}

func NewSampleHandler(
	list *appsample.ListSamplesUseCase,
	get *appsample.GetSampleUseCase,
	create *appsample.CreateSampleUseCase,
) *SampleHandler {
	return &SampleHandler{list: list, get: get, create: create}
}

// List
// @Summary      测试数据列表
// @Tags         测试
// @Produce      json
// @Success      200 {object} response.Response{data=[]appsample.SampleResponse}
// @Router       /api/v1/tests [get]
func (h *SampleHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// Get
// @Summary      测试数据详情
// @Tags         测试
// @Produce      json
// @Param        id path int true "ID"
// @Success      200 {object} response.Response{data=appsample.SampleResponse}
// @Failure      404 {object} response.Response "测试数据不存在"
// @Router       /api/v1/tests/{id} [get]
func (h *SampleHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id", "ID格式错误")
	if !ok {
		return
	}

	resp, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, resp)
}

// Create
// @Summary      新建测试数据
// @Tags         测试
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateSampleRequest true "内容"
// @Success      201 {object} response.Response{data=appsample.SampleResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/tests [post]
func (h *SampleHandler) Create(c *gin.Context) {
	var req dto.CreateSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	resp, err := h.create.Execute(c.Request.Context(), req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}
