package http

import (
	"encoding/json"
	"log"
	"net/http"

	"quixie-quiz-service/internal/app"
	"quixie-quiz-service/internal/domain"
	"github.com/gorilla/websocket"
)

// WSHandler drives one quiz session per WebSocket connection. All outbound
// messages derive from the session's snapshot stream, so a timer expiry and a
// user action surface to the client the same way.
type WSHandler struct {
	service  *app.SessionService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.SessionService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Answer string `json:"answer"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

type answerView struct {
	SelectedAnswer *string `json:"selectedAnswer"`
	Correct        bool    `json:"correct"`
	CorrectAnswer  string  `json:"correctAnswer"`
}

type questionPayload struct {
	Index            int         `json:"index"`
	Total            int         `json:"total"`
	Prompt           string      `json:"prompt"`
	Media            string      `json:"media,omitempty"`
	Options          []string    `json:"options"`
	RemainingSeconds int         `json:"remainingSeconds"`
	Score            app.Score   `json:"score"`
	PreviousAnswer   *answerView `json:"previousAnswer,omitempty"`
}

type feedbackPayload struct {
	Index          int       `json:"index"`
	Correct        bool      `json:"correct"`
	SelectedAnswer *string   `json:"selectedAnswer"`
	CorrectAnswer  string    `json:"correctAnswer"`
	Explanation    string    `json:"explanation,omitempty"`
	Score          app.Score `json:"score"`
}

// ServeWS upgrades the request and plays a session: the server pushes
// question, feedback and result events; the client sends answer, advance and
// back commands.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	quizID := r.URL.Query().Get("quizId")
	userID := r.URL.Query().Get("userId")
	if quizID == "" || userID == "" {
		http.Error(w, "missing quizId or userId", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	session, err := h.service.StartSession(r.Context(), quizID, userID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.EndSession(session.Key())

	updates, cancel := session.Subscribe()
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		quiz := session.Quiz()
		for {
			select {
			case snap, ok := <-updates:
				if !ok {
					return
				}
				msg, terminal := h.messageFor(r, session, quiz, snap)
				select {
				case send <- msg:
				case <-closeSignals:
					return
				}
				if terminal {
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			session.Submit(payload.Answer)
		case "advance":
			session.Advance()
		case "back":
			session.GoBack()
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

// messageFor translates a snapshot into the client-facing event. The second
// return value is true once the session reached its terminal state.
func (h *WSHandler) messageFor(r *http.Request, session *app.Session, quiz domain.Quiz, snap app.Snapshot) (outboundMessage[any], bool) {
	switch snap.Phase {
	case app.PhaseFeedback:
		record := snap.Records[snap.Index]
		return outboundMessage[any]{Type: "feedback", Payload: feedbackPayload{
			Index:          snap.Index,
			Correct:        record.Correct,
			SelectedAnswer: record.SelectedAnswer,
			CorrectAnswer:  record.CorrectAnswer,
			Explanation:    quiz.Questions[snap.Index].Explanation,
			Score:          snap.Running,
		}}, false
	case app.PhaseComplete:
		saved, err := h.service.SaveResult(r.Context(), session)
		if err != nil {
			log.Printf("save result for session %s: %v", session.Key(), err)
			return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "failed to save quiz result"}}, true
		}
		return outboundMessage[any]{Type: "result", Payload: saved}, true
	default:
		question := quiz.Questions[snap.Index]
		options := make([]string, len(question.Options))
		for i, opt := range question.Options {
			options[i] = opt.Text
		}
		payload := questionPayload{
			Index:            snap.Index,
			Total:            snap.TotalQuestions,
			Prompt:           question.Text,
			Media:            question.Media,
			Options:          options,
			RemainingSeconds: snap.Remaining,
			Score:            snap.Running,
		}
		// Revisited questions are view-only; include the recorded answer.
		if snap.Index < len(snap.Records) {
			record := snap.Records[snap.Index]
			payload.PreviousAnswer = &answerView{
				SelectedAnswer: record.SelectedAnswer,
				Correct:        record.Correct,
				CorrectAnswer:  record.CorrectAnswer,
			}
		}
		return outboundMessage[any]{Type: "question", Payload: payload}, false
	}
}
