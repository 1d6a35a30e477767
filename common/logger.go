// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	logging "github.com/ipfs/go-log"
)

// Logger is the shared logger for the module.
var Logger = logging.Logger("mulgroup")
