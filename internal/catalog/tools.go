package catalog

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names. The dispatch table must enumerate exactly this set.
const (
	ToolAnalyzeProject        = "analyze_project"
	ToolSetupBetterAuth       = "setup_better_auth"
	ToolAnalyzeCurrentAuth    = "analyze_current_auth"
	ToolGenerateMigrationPlan = "generate_migration_plan"
	ToolTestAuthFlows         = "test_auth_flows"
	ToolTestSecurity          = "test_security"
	ToolAnalyzeLogs           = "analyze_logs"
	ToolMonitorAuthFlows      = "monitor_auth_flows"
)

// Enumerations referenced by the tool schemas.
var (
	// AuthTypes are the supported source auth frameworks for migration.
	AuthTypes = []any{"auth.js", "next-auth"}

	// AuthFlows are the flows test_auth_flows can exercise.
	AuthFlows = []any{"login", "register", "password-reset", "2fa"}

	// SecurityTests are the checks test_security can run.
	SecurityTests = []any{"password-policy", "rate-limiting", "session-management"}
)

// Tools returns the tool catalog in its fixed declaration order. The returned
// slice is freshly allocated; the descriptors themselves are shared and must
// not be mutated.
func Tools() []*mcp.Tool {
	return []*mcp.Tool{
		analyzeProjectTool,
		setupBetterAuthTool,
		analyzeCurrentAuthTool,
		generateMigrationPlanTool,
		testAuthFlowsTool,
		testSecurityTool,
		analyzeLogsTool,
		monitorAuthFlowsTool,
	}
}

// ToolNames returns the catalog's tool names in declaration order.
func ToolNames() []string {
	tools := Tools()
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}

	return names
}

var analyzeProjectTool = &mcp.Tool{
	Name:        ToolAnalyzeProject,
	Description: "Analyze project structure and dependencies for Better Auth integration",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"projectPath": {
				Type:        "string",
				Description: "Path to the project root directory",
			},
		},
		Required: []string{"projectPath"},
	},
}

var setupBetterAuthTool = &mcp.Tool{
	Name:        ToolSetupBetterAuth,
	Description: "Set up Better Auth with the given project configuration",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"projectPath": {
				Type:        "string",
				Description: "Path to the project root directory",
			},
			"config": {
				Type:        "object",
				Description: "Better Auth project configuration",
				Properties: map[string]*jsonschema.Schema{
					"projectId": {Type: "string"},
					"apiKey":    {Type: "string"},
					"environment": {
						Type:        "string",
						Description: "Deployment environment tag",
					},
				},
				Required: []string{"projectId", "apiKey"},
			},
		},
		Required: []string{"projectPath", "config"},
	},
}

var analyzeCurrentAuthTool = &mcp.Tool{
	Name:        ToolAnalyzeCurrentAuth,
	Description: "Analyze the existing authentication implementation",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"projectPath": {
				Type:        "string",
				Description: "Path to the project root directory",
			},
		},
		Required: []string{"projectPath"},
	},
}

var generateMigrationPlanTool = &mcp.Tool{
	Name:        ToolGenerateMigrationPlan,
	Description: "Generate a migration plan from the current auth framework to Better Auth",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"projectPath": {
				Type:        "string",
				Description: "Path to the project root directory",
			},
			"currentAuthType": {
				Type:        "string",
				Description: "Auth framework currently in use",
				Enum:        AuthTypes,
			},
		},
		Required: []string{"projectPath", "currentAuthType"},
	},
}

var testAuthFlowsTool = &mcp.Tool{
	Name:        ToolTestAuthFlows,
	Description: "Test the selected authentication flows",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"flows": {
				Type:        "array",
				Description: "Flows to exercise, in order",
				Items:       &jsonschema.Schema{Type: "string", Enum: AuthFlows},
			},
		},
		Required: []string{"flows"},
	},
}

var testSecurityTool = &mcp.Tool{
	Name:        ToolTestSecurity,
	Description: "Run security checks against the auth configuration",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"tests": {
				Type:        "array",
				Description: "Checks to run; all run when omitted",
				Items:       &jsonschema.Schema{Type: "string", Enum: SecurityTests},
			},
		},
	},
}

var analyzeLogsTool = &mcp.Tool{
	Name:        ToolAnalyzeLogs,
	Description: "Analyze authentication logs over a time range",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"timeRange": {
				Type:        "string",
				Description: "Time range to analyze, e.g. \"24h\"",
			},
		},
		Required: []string{"timeRange"},
	},
}

var monitorAuthFlowsTool = &mcp.Tool{
	Name:        ToolMonitorAuthFlows,
	Description: "Monitor authentication flows for a duration",
	InputSchema: &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"duration": {
				Type:        "string",
				Description: "How long to monitor, e.g. \"5m\"",
			},
		},
		Required: []string{"duration"},
	},
}
