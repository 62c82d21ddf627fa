package http

var ToggleHref = toggleHref
