package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripnation/internal/models/request_models"
	"tripnation/internal/models/response_models"
	"tripnation/internal/services"
	"tripnation/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{quizService: quizService}
}

// Questions godoc
// @Summary Quiz questions
// @Tags Quiz
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]quiz.Question}
// @Router /quiz/questions [get]
func (qc *QuizController) Questions(c *gin.Context) {
	utils.RespondSuccess(c, qc.quizService.Questions(), "Fetched questions successfully")
}

// Classify godoc
// @Summary Classify a traveler from answers
// @Description Stateless scoring. Unknown questions and options are ignored. No answers resolve to consciente.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param request body request_models.ClassifyRequest true "Answers by question id"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizResultResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /quiz/classify [post]
func (qc *QuizController) Classify(c *gin.Context) {
	var req request_models.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	utils.RespondSuccess(c, qc.quizService.Classify(req.Answers), "Profile resolved")
}

// StartSession godoc
// @Summary Start a quiz session
// @Tags Quiz
// @Produce json
// @Success 201 {object} utils.APIResponse{data=response_models.QuizSessionResponse}
// @Router /quiz/sessions [post]
func (qc *QuizController) StartSession(c *gin.Context) {
	session, err := qc.quizService.StartSession(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, session, "Quiz started")
}

// GetSession godoc
// @Summary Current quiz step
// @Tags Quiz
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizSessionResponse}
// @Failure 404 {object} utils.APIResponse
// @Router /quiz/sessions/{id} [get]
func (qc *QuizController) GetSession(c *gin.Context) {
	qc.respond(c, func() (*response_models.QuizSessionResponse, error) {
		return qc.quizService.GetSession(c.Request.Context(), c.Param("id"))
	})
}

// Answer godoc
// @Summary Answer the current question
// @Tags Quiz
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body request_models.QuizAnswerRequest true "Chosen option"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizSessionResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/answer [post]
func (qc *QuizController) Answer(c *gin.Context) {
	var req request_models.QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	qc.respond(c, func() (*response_models.QuizSessionResponse, error) {
		return qc.quizService.Answer(c.Request.Context(), c.Param("id"), req.Value, req.Advance)
	})
}

// Next godoc
// @Summary Advance to the next step
// @Tags Quiz
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizSessionResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/next [post]
func (qc *QuizController) Next(c *gin.Context) {
	qc.respond(c, func() (*response_models.QuizSessionResponse, error) {
		return qc.quizService.Next(c.Request.Context(), c.Param("id"))
	})
}

// Back godoc
// @Summary Go back one question
// @Tags Quiz
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizSessionResponse}
// @Router /quiz/sessions/{id}/back [post]
func (qc *QuizController) Back(c *gin.Context) {
	qc.respond(c, func() (*response_models.QuizSessionResponse, error) {
		return qc.quizService.Back(c.Request.Context(), c.Param("id"))
	})
}

// Redo godoc
// @Summary Retake the quiz from the result screen
// @Tags Quiz
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizSessionResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/redo [post]
func (qc *QuizController) Redo(c *gin.Context) {
	qc.respond(c, func() (*response_models.QuizSessionResponse, error) {
		return qc.quizService.Redo(c.Request.Context(), c.Param("id"))
	})
}

// Close godoc
// @Summary Close the quiz and clear answers
// @Tags Quiz
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizSessionResponse}
// @Router /quiz/sessions/{id}/close [post]
func (qc *QuizController) Close(c *gin.Context) {
	qc.respond(c, func() (*response_models.QuizSessionResponse, error) {
		return qc.quizService.Close(c.Request.Context(), c.Param("id"))
	})
}

// Result godoc
// @Summary Resolved traveler profile
// @Tags Quiz
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse{data=response_models.QuizResultResponse}
// @Failure 409 {object} utils.APIResponse
// @Router /quiz/sessions/{id}/result [get]
func (qc *QuizController) Result(c *gin.Context) {
	res, err := qc.quizService.Result(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Profile resolved")
}

func (qc *QuizController) respond(c *gin.Context, op func() (*response_models.QuizSessionResponse, error)) {
	session, err := op()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, session, "")
}
