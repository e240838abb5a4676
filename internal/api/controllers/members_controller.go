package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clubpuntos/internal/services"
	"clubpuntos/pkg/utils"
)

type MembersController struct {
	memberService  services.MemberServiceInterface
	rankingService services.RankingServiceInterface
}

func NewMembersController(memberService services.MemberServiceInterface, rankingService services.RankingServiceInterface) *MembersController {
	return &MembersController{
		memberService:  memberService,
		rankingService: rankingService,
	}
}

func memberIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Member id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// GetAccountView godoc
// @Summary Get a member's balance and history
// @Description Member record, derived point balance and all ledger entries newest first
// @Tags Members
// @Produce json
// @Param id path int true "Member id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/members/{id} [get]
func (m *MembersController) GetAccountView(c *gin.Context) {
	id, ok := memberIDParam(c)
	if !ok {
		return
	}

	view, err := m.memberService.GetAccountView(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Account fetched successfully")
}

// ListMembers godoc
// @Summary List all members with balances
// @Tags Members
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/members [get]
func (m *MembersController) ListMembers(c *gin.Context) {
	members, err := m.memberService.ListWithBalances(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "Members fetched successfully")
}

// GetRank godoc
// @Summary Get a member's ranking position
// @Tags Members
// @Produce json
// @Param id path int true "Member id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/members/{id}/rank [get]
func (m *MembersController) GetRank(c *gin.Context) {
	id, ok := memberIDParam(c)
	if !ok {
		return
	}

	position, err := m.rankingService.PositionOf(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, position, "Ranking position fetched successfully")
}

// GetRanking godoc
// @Summary Rank all members by balance
// @Description Balance descending; equal balances get adjacent positions ordered by member id
// @Tags Members
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/ranking [get]
func (m *MembersController) GetRanking(c *gin.Context) {
	ranked, err := m.rankingService.Rank(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ranked, "Ranking fetched successfully")
}
