// Copyright (c) 2018-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package gcs provides an API for building and using BIP-0158 Golomb-coded set
filters.

A Golomb-Coded Set (GCS) is a space-efficient probabilistic data structure that
is used to test set membership with a tunable false positive rate while
simultaneously preventing false negatives.  In other words, items that are in
the set will always match, but items that are not in the set will also sometimes
match with the chosen false positive rate.

Filters follow the Golomb-coded set construction of BIP-0158:
https://github.com/bitcoin/bips/blob/master/bip-0158.mediawiki#golomb-coded-sets

They are parameterized by the following:

* A parameter `P` that defines the remainder code bit size
* A parameter `M` that defines the false positive rate as `1/M`
* A key for the SipHash-2-4 function
* The items to include in the set

P and M are not part of the serialized filter and must be agreed upon by the
builder and everyone matching against the filter.  BasicParams holds the values
used by BIP-0158 basic block filters.

Each distinct item is hashed with SipHash-2-4 and mapped into the range [0, N*M)
where N is the number of distinct items.  The sorted values are then stored as
Golomb-Rice coded deltas prefixed by N serialized as a variable length integer.

# Matching

Match tests a single item.  MatchAny tests whether any of several items might be
a member and only decodes the filter once, so it should be preferred over
repeated calls to Match when the items are known in advance.  MatchEach does the
same, but reports which of the items matched.

Filters are only decoded while matching.  A filter that turns out to be corrupt
results in an error rather than a miss so that corruption can never be confused
with a true negative.  Validate decodes an entire filter up front.

# Errors

The errors returned by this package are of type gcs.Error.  This allows the
caller to programmatically determine the specific error by using errors.Is or
errors.As against the ErrorKind constants while still providing rich error
messages with contextual information.  See ErrorKind in the package
documentation for a full list.
*/
package gcs
