package client

// DecodeToolsPage exposes decodeToolsPage to the black-box tests.
var DecodeToolsPage = decodeToolsPage
