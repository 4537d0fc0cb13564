package h264

// MaxSPS and MaxPPS are the H.264-spec parameter-set id limits: ids are
// a 5-bit ue(v), but the standard further bounds the active set to 32
// slots of each kind.
const (
	MaxSPS = 32
	MaxPPS = 32
)

// Cache is a fixed-capacity indexed table of SPS/PPS slots, written only
// by the SPS/PPS NAL handlers and read by slice validation (§4.F). A
// slot is either empty or owns one parsed parameter set; entries are
// invalidated only at decoder teardown or explicit replacement.
type Cache struct {
	sps [MaxSPS]*SPSInfo
	pps [MaxPPS]*PPS
}

// NewCache returns an empty parameter-set cache.
func NewCache() *Cache {
	return &Cache{}
}

// PutSPS inserts sps at SPS[sps.ID]. An out-of-range id is a
// MalformedBitstream error rather than a panic, since the id comes
// straight off the wire.
func (c *Cache) PutSPS(sps *SPSInfo) error {
	if sps.ID >= MaxSPS {
		return ErrParamSetIDRange
	}
	c.sps[sps.ID] = sps
	return nil
}

// PutPPS inserts pps at PPS[pps.ID].
func (c *Cache) PutPPS(pps *PPS) error {
	if pps.ID >= MaxPPS {
		return ErrParamSetIDRange
	}
	c.pps[pps.ID] = pps
	return nil
}

// SPS returns the cached SPS at id, if any.
func (c *Cache) SPS(id uint) (*SPSInfo, bool) {
	if id >= MaxSPS {
		return nil, false
	}
	sps := c.sps[id]
	return sps, sps != nil
}

// PPS returns the cached PPS at id, if any.
func (c *Cache) PPS(id uint) (*PPS, bool) {
	if id >= MaxPPS {
		return nil, false
	}
	pps := c.pps[id]
	return pps, pps != nil
}

// Validate runs the §4.F pre-decode check for a slice referencing
// ppsID: the PPS must be cached, and the SPS it names must be cached
// too. It returns both on success so the caller needn't look them up
// twice.
func (c *Cache) Validate(ppsID uint) (*PPS, *SPSInfo, error) {
	pps, ok := c.PPS(ppsID)
	if !ok {
		return nil, nil, ErrPPSMissing
	}
	sps, ok := c.SPS(pps.SPSID)
	if !ok {
		return nil, nil, ErrSPSMissing
	}
	return pps, sps, nil
}
