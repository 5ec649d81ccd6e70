package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookshop/internal/application/author"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	list   *appauthor.ListAuthorsUseCase
	get    *appauthor.GetAuthorUseCase
	create *appauthor.CreateAuthorUseCase
	update *appauthor.UpdateAuthorUseCase
	delete *appauthor.DeleteAuthorUseCase
}

func NewAuthorHandler(
	list *appauthor.ListAuthorsUseCase,
	get *appauthor.GetAuthorUseCase,
	create *appauthor.CreateAuthorUseCase,
	update *appauthor.UpdateAuthorUseCase,
	del *appauthor.DeleteAuthorUseCase,
) *AuthorHandler {
	return &AuthorHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		delete: del,
	}
}

// ListAuthors 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {object} response.Response{data=[]appauthor.AuthorResponse}
// @Router       /api/v1/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	result, err := h.list.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetAuthor 作者详情
// @Summary      作者详情
// @Tags         作者
// @Produce      json
// @Param        id path string true "作者ID"
// @Success      200 {object} response.Response{data=appauthor.AuthorResponse}
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, ok := uuidParam(c, "id", "作者ID格式错误")
	if !ok {
		return
	}

	result, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CreateAuthor 新建作者
// @Summary      新建作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAuthorRequest true "作者信息"
// @Success      201 {object} response.Response{data=appauthor.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.create.Execute(c.Request.Context(), appauthor.CreateAuthorRequest{
		Forename:  req.Forename,
		Surname:   req.Surname,
		PenName:   req.PenName,
		Biography: req.Biography,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateAuthor 修改作者
// @Summary      修改作者
// @Description  只更新请求里出现的字段
// @Tags         作者
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                  true "作者ID"
// @Param        request body dto.UpdateAuthorRequest true "要修改的字段"
// @Success      200 {object} response.Response{data=appauthor.AuthorResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := uuidParam(c, "id", "作者ID格式错误")
	if !ok {
		return
	}

	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.update.Execute(c.Request.Context(), appauthor.UpdateAuthorRequest{
		ID:        id,
		Forename:  req.Forename,
		Surname:   req.Surname,
		PenName:   req.PenName,
		Biography: req.Biography,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// DeleteAuthor 删除作者
// @Summary      删除作者
// @Tags         作者
// @Security     BearerAuth
// @Param        id path string true "作者ID"
// @Success      204
// @Failure      404 {object} response.Response "作者不存在"
// @Router       /api/v1/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := uuidParam(c, "id", "作者ID格式错误")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
