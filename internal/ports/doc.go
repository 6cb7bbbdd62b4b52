// Package ports holds the interfaces the chat service is assembled from.
//
// Inbound ports (AuthService, ChatService, SessionStore) are implemented in
// internal/app and consumed by the HTTP handlers. Outbound ports (LLMClient,
// WikipediaClient, UserStore) are implemented by the adapters and
// consumed by the application layer. Agent, Tool and the health
// interfaces tie the agent and the readiness probe to whatever is wired in
// cmd/server.
package ports
