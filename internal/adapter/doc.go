// Package adapter is the client side of the conf HTTP API.
//
// [ConfClient] posts JSON requests carrying the shared access token and
// decodes the tagged result envelope the server answers with.
package adapter
