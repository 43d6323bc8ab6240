// Package freshbooks is a typed client SDK for the FreshBooks accounting
// REST API: OAuth2 authorization-code and refresh-token flows plus CRUD
// access to clients, invoices, expenses, payments, and taxes.
package freshbooks

import "github.com/goliatone/go-freshbooks/core"

type Config = core.Config

type Session = core.Session

type AuthorizationToken = core.AuthorizationToken

type Identity = core.Identity

type BusinessMembership = core.BusinessMembership

type Business = core.Business

type Transport = core.Transport

type TransportRequest = core.TransportRequest

type TransportResponse = core.TransportResponse

type RawConfigLoader = core.RawConfigLoader

type ConfigProvider = core.ConfigProvider

var DefaultConfig = core.DefaultConfig

var (
	IsConfiguration  = core.IsConfiguration
	IsAuthentication = core.IsAuthentication
	IsValidation     = core.IsValidation
	IsNotFound       = core.IsNotFound
	IsAPI            = core.IsAPI
	IsDecode         = core.IsDecode
	StatusCode       = core.StatusCode
	FieldErrors      = core.FieldErrors
)
