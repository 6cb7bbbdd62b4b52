// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/chatbot-service/internal/domain"

// ChatResponse is the body of a successful POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// CurrentTimeResponse is the body of GET /current_time.
type CurrentTimeResponse struct {
	CurrentTime string `json:"current_time"`
}

// UsersResponse is the body of GET /view_db. Each row is an [id, username]
// pair. Password hashes are never included.
type UsersResponse struct {
	Users [][]any `json:"users"`
}

// ToUsersResponse converts domain users to the debug listing.
func ToUsersResponse(users []domain.User) UsersResponse {
	rows := make([][]any, len(users))
	for i := range users {
		rows[i] = []any{users[i].ID, users[i].Username}
	}
	return UsersResponse{Users: rows}
}
