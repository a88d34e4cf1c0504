package domain

// Namespace tags the kind of ephemeral credential sharing one keyed
// store. A (namespace, author) pair identifies at most one live value;
// issuing again overwrites the previous one and resets its expiry.
type Namespace string

const (
	// NamespaceTempCode holds short-lived emailed login codes.
	NamespaceTempCode Namespace = "TMP_CODE"
	// NamespaceSessionToken holds long-lived session JWTs.
	NamespaceSessionToken Namespace = "JWT"
)

// LikeTarget tags which entity kind a like set belongs to. The values
// double as the Redis key prefixes of the membership sets.
type LikeTarget string

const (
	LikeTargetRecipe  LikeTarget = "RECIPE_SET"
	LikeTargetComment LikeTarget = "LIKE_SET"
)
