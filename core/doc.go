// Package core holds the shared contracts of the SDK: the configuration
// record and its layered resolution, the credential session, the error
// envelope, and the transport interface the auth flow and resource accessors
// speak through.
package core
