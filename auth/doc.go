// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides caller authentication and identifier utilities.

# Caller Tokens

Caller tokens use HMAC-SHA256 to create deterministic, verifiable service
credentials for a caller identity:

	token := auth.GenerateCallerToken(callerID, salt)
	err := auth.ValidateCallerToken(callerID, token, salt)

The token is URL-safe base64 encoded without padding. Since it's
deterministic, the same caller ID and salt always produce the same token,
so validation needs no token storage. This is a service credential, not a
cryptographic signature: the engine itself never verifies signatures.

# Ballot IDs

Ballots get UUID identifiers:

	id := auth.GenerateBallotID()

# ID Generation

Random hex IDs for other records (event log entries):

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
