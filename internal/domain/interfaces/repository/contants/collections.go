package repocontants

const USER_CONTEXT_COLLECTION = "user_contexts"
