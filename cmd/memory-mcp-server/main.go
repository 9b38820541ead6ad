package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"vikibot/internal/memory"
	"vikibot/internal/prompt"
	"vikibot/internal/recognize"
)

// GetProfileParams identifies the user whose memory to read.
type GetProfileParams struct {
	UserID string `json:"user_id" mcp:"the user identity whose profile to read"`
}

// RememberFactParams stores one (field, value) fact for a user.
type RememberFactParams struct {
	UserID string `json:"user_id" mcp:"the user identity to update"`
	Field  string `json:"field" mcp:"the profile field name (e.g. 'name', 'favorite color')"`
	Value  string `json:"value" mcp:"the value to remember"`
}

// ForgetUserParams identifies the user whose record to delete.
type ForgetUserParams struct {
	UserID string `json:"user_id" mcp:"the user identity whose memory to erase"`
}

// MemoryMCPServer exposes the profile store as MCP tools.
type MemoryMCPServer struct {
	store *memory.Store
}

func (s *MemoryMCPServer) GetProfile(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[GetProfileParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	if args.UserID == "" {
		return &mcp.CallToolResultFor[any]{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: "user_id is required"}},
		}, nil
	}

	p := s.store.Load(args.UserID)
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: prompt.RenderContext(p)}},
	}, nil
}

func (s *MemoryMCPServer) RememberFact(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[RememberFactParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	if args.UserID == "" || args.Field == "" || args.Value == "" {
		return &mcp.CallToolResultFor[any]{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: "user_id, field and value are required"}},
		}, nil
	}

	field := recognize.NormalizeField(args.Field)
	p := s.store.Load(args.UserID)
	if p.Set(field, args.Value) {
		if err := s.store.Save(args.UserID, p); err != nil {
			return &mcp.CallToolResultFor[any]{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("failed to save profile: %v", err)}},
			}, nil
		}
	}
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("remembered %s for %s", field, args.UserID)}},
	}, nil
}

func (s *MemoryMCPServer) ForgetUser(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ForgetUserParams]) (*mcp.CallToolResultFor[any], error) {
	args := params.Arguments
	if args.UserID == "" {
		return &mcp.CallToolResultFor[any]{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: "user_id is required"}},
		}, nil
	}

	if err := s.store.Delete(args.UserID); err != nil {
		return &mcp.CallToolResultFor[any]{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("failed to delete profile: %v", err)}},
		}, nil
	}
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("forgot everything about %s", args.UserID)}},
	}, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	memoryDir := os.Getenv("MEMORY_DIR")
	if memoryDir == "" {
		memoryDir = "memory"
	}
	nickname := os.Getenv("BOT_NICKNAME")
	if nickname == "" {
		nickname = "Viki"
	}

	store, err := memory.NewStore(memoryDir, nickname)
	if err != nil {
		log.Fatalf("❌ failed to init memory store: %v", err)
	}

	log.Printf("🚀 Starting Memory MCP Server (dir: %s)", memoryDir)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "vikibot-memory-mcp",
		Version: "1.0.0",
	}, nil)

	memServer := &MemoryMCPServer{store: store}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_profile",
		Description: "Returns everything remembered about a user as a labeled text block",
	}, memServer.GetProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remember_fact",
		Description: "Stores a single fact (field, value) in a user's profile",
	}, memServer.RememberFact)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "forget_user",
		Description: "Deletes a user's entire profile record",
	}, memServer.ForgetUser)

	log.Printf("📋 Registered 3 tools: get_profile, remember_fact, forget_user")
	log.Printf("🔗 Starting server on stdin/stdout...")

	transport := mcp.NewStdioTransport()
	if err := server.Run(context.Background(), transport); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
