package apperror

import "errors"

var (
	ErrRoundWon        = errors.New("round is already won")
	ErrRoundInProgress = errors.New("round is still in progress")
	ErrUnknownStatus   = errors.New("unknown round status")
	ErrSessionRequired = errors.New("session id is required")
)
