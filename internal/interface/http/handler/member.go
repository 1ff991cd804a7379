package handler

import (
	"github.com/gin-gonic/gin"

	appmember "github.com/xiebiao/bookstore-api/internal/application/member"
	"github.com/xiebiao/bookstore-api/internal/interface/http/dto"
	"github.com/xiebiao/bookstore-api/internal/interface/http/middleware"
	"github.com/xiebiao/bookstore-api/pkg/response"
)

// MemberHandler 会员注册、登录、登出
// Handler只负责解析请求、调用应用层、返回响应
type MemberHandler struct {
	register *appmember.RegisterUseCase
	login    *appmember.LoginUseCase
	logout   *appmember.LogoutUseCase
}

// NewMemberHandler 创建会员处理器
func NewMemberHandler(
	register *appmember.RegisterUseCase,
	login *appmember.LoginUseCase,
	logout *appmember.LogoutUseCase,
) *MemberHandler {
	return &MemberHandler{register: register, login: login, logout: logout}
}

// Register 会员注册
// @Summary      会员注册
// @Tags         会员
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} response.Response{body=appmember.MemberInfo} "注册成功"
// @Failure      400 {object} response.Response "参数错误或密码强度不足"
// @Failure      409 {object} response.Response "邮箱已存在"
// @Router       /bookstore/members/register [post]
func (h *MemberHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	info, err := h.register.Execute(c.Request.Context(), appmember.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, "registered", info)
}

// Login 会员登录
// @Summary      会员登录
// @Description  验证邮箱密码,返回JWT Token对
// @Tags         会员
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{body=appmember.LoginResponse}
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /bookstore/members/login [post]
func (h *MemberHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.login.Execute(c.Request.Context(), appmember.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, res)
}

// Logout 登出
// @Summary      登出
// @Description  删除会话,当前Access Token加入黑名单
// @Tags         会员
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /bookstore/members/logout [post]
func (h *MemberHandler) Logout(c *gin.Context) {
	err := h.logout.Execute(c.Request.Context(), middleware.MustGetMemberID(c), middleware.GetAccessToken(c))
	if err != nil {
		fail(c, err)
		return
	}
	ok200(c, "logged out")
}
