package routes

// ApiEndpoint is the base path of the cluster management REST API.
const ApiEndpoint = "/v3"
