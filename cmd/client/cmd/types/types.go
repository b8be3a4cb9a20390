package types

type ContextKey string

// ClientAppKey carries the initialized *client.App through the command
// context.
const ClientAppKey ContextKey = "clientApp"
