/*
Project: Synapse - AI-assisted learning platform
*/
package synapse

/*
TODO: persist signed-up profiles & progress (profile.Repository backed by sqlite) so they survive restarts
TODO: real payment.Gateway (card processor) instead of the mock one
TODO: certificate verification endpoint for the QR code data (SYNAPSE-CERT-<id>)
TODO: un-enroll (not supported by the tracker for now)
*/
