/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 */

package imetrics

const bitSize = 64
