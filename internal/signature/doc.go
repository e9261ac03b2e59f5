// Package signature implements webhook signature verification for the
// LINE Messaging API webhook scheme.
//
// Inbound webhook requests carry an X-Line-Signature header holding the
// standard base64 encoding of the HMAC-SHA256 digest of the raw request
// body, computed with the channel secret as key. This package derives a
// verification key from the channel secret once and checks request
// signatures against it.
//
// # Verification Scheme
//
//   - Algorithm: HMAC-SHA256 over the exact raw body bytes
//   - Encoding: standard base64 (RFC 4648, with padding)
//   - Key material: the channel secret's raw UTF-8 bytes
//   - Comparison: constant time (hmac.Equal)
//
// # Usage
//
//	key, err := signature.DeriveKey(os.Getenv("LINE_CHANNEL_SECRET"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	body, _ := io.ReadAll(r.Body)
//	if !key.Verify(body, r.Header.Get("X-Line-Signature")) {
//	    http.Error(w, "signature validation failed", http.StatusUnauthorized)
//	    return
//	}
//
// # Security Considerations
//
//   - The body must be the exact bytes received on the wire; any
//     re-encoding or normalization before verification changes the digest.
//   - A valid signature proves origin authenticity and payload integrity
//     only. It does not detect replayed requests; always serve webhook
//     endpoints over HTTPS.
//   - Keep the channel secret in the environment, never in code, and keep
//     secrets and signatures out of logs.
package signature
