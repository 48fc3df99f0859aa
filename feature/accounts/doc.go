// Package accounts implements identity and access: login with
// auto-provisioning, bcrypt credential verification, session token
// minting, and the game-master flag.
//
// There are two capability levels. Any valid token grants access to
// inventory operations on the caller's own account; catalog, quest,
// party-storage administration and map mutations additionally require
// the game-master flag carried in the token.
package accounts
