package server

import (
	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ShowRequestSwap handles GET /request_swap/:user_id: the proposal form,
// pre-populated with the requester's offered skills and the target's.
func (s *Server) ShowRequestSwap(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	targetID, ok := s.parseID(c, "user_id", "/public_profiles")
	if !ok {
		return nil
	}

	target, err := s.discoveryService.ViewProfile(c.Context(), targetID)
	if err != nil {
		return s.fail(c, err, "/public_profiles")
	}

	mySkills, err := s.skillRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return s.fail(c, err, "/public_profiles")
	}

	var offered []models.Skill
	for _, skill := range mySkills {
		if skill.Kind == models.SkillKindOffered {
			offered = append(offered, skill)
		}
	}

	return s.render(c, "request_swap", fiber.Map{
		"Title":       "Propose a swap",
		"Target":      target,
		"MySkills":    offered,
		"TheirSkills": target.SkillsOffered(),
	})
}

// CreateSwap handles POST /request_swap/:user_id.
func (s *Server) CreateSwap(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	targetID, ok := s.parseID(c, "user_id", "/public_profiles")
	if !ok {
		return nil
	}

	_, err := s.swapService.CreateSwap(c.Context(), service.CreateSwapInput{
		RequesterID:    userID,
		TargetID:       targetID,
		OfferedSkill:   c.FormValue("offered_skill"),
		RequestedSkill: c.FormValue("requested_skill"),
		Message:        c.FormValue("message"),
	})
	if err != nil {
		return s.fail(c, err, "/request_swap/"+c.Params("user_id"))
	}

	setFlash(c, flashSuccess, "Swap request sent")
	return c.Redirect("/swap_requests", fiber.StatusSeeOther)
}

// SwapRequests handles GET /swap_requests: incoming and sent, newest first.
func (s *Server) SwapRequests(c *fiber.Ctx) error {
	userID, _ := currentUserID(c)

	incoming, err := s.swapService.ListIncoming(c.Context(), userID)
	if err != nil {
		return s.fail(c, err, "/dashboard")
	}
	sent, err := s.swapService.ListSent(c.Context(), userID)
	if err != nil {
		return s.fail(c, err, "/dashboard")
	}

	return s.render(c, "swap_requests", fiber.Map{
		"Title":    "Swap requests",
		"Incoming": incoming,
		"Sent":     sent,
	})
}

// AcceptSwap handles POST /swap_requests/:id/accept.
func (s *Server) AcceptSwap(c *fiber.Ctx) error {
	return s.decideSwap(c, models.SwapStatusAccepted)
}

// RejectSwap handles POST /swap_requests/:id/reject.
func (s *Server) RejectSwap(c *fiber.Ctx) error {
	return s.decideSwap(c, models.SwapStatusRejected)
}

func (s *Server) decideSwap(c *fiber.Ctx, status models.SwapStatus) error {
	userID, _ := currentUserID(c)

	requestID, ok := s.parseID(c, "id", "/swap_requests")
	if !ok {
		return nil
	}

	var err error
	if status == models.SwapStatusAccepted {
		_, err = s.swapService.Accept(c.Context(), requestID, userID)
	} else {
		_, err = s.swapService.Reject(c.Context(), requestID, userID)
	}
	if err != nil {
		return s.fail(c, err, "/swap_requests")
	}

	middleware.SwapDecisions.WithLabelValues(string(status)).Inc()
	setFlash(c, flashSuccess, "Swap request "+string(status))
	return c.Redirect("/swap_requests", fiber.StatusSeeOther)
}
