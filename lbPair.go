package dlmmgosdk

import (
	"errors"
	"fmt"

	"dlmmGoSDK/bintree"
	"dlmmGoSDK/constants"
	"dlmmGoSDK/helpers"
	"dlmmGoSDK/types"

	"github.com/holiman/uint256"
)

var (
	// ErrOutOfLiquidity indicates the swap walked past the last populated
	// bin in its direction before the requested amount was filled.
	ErrOutOfLiquidity = errors.New("not enough liquidity to fill the swap")

	// ErrZeroSwapAmount indicates a swap was requested for nothing.
	ErrZeroSwapAmount = errors.New("swap amount is zero")

	// ErrInsufficientReserve indicates a withdrawal larger than the bin
	// holds.
	ErrInsufficientReserve = errors.New("bin reserve below requested amount")
)

// SwapResult aggregates a multi-bin fill.
type SwapResult struct {
	// AmountInUsed is the input consumed, fees included.
	AmountInUsed uint256.Int
	AmountOut    uint256.Int
	// Fees is the total fee split charged on the input side.
	Fees types.FeesDistribution
}

// LBPair drives the pricing engine for one trading pair held in memory.
// The host hands it freshly loaded state, invokes one operation to
// completion and persists (or discards) the result; the pair itself keeps
// no locks and spawns nothing.
type LBPair struct {
	Info   types.PairInformation
	Params types.FeeParameters

	bins   map[uint32]*types.Bin
	supply map[uint32]*uint256.Int
	tree   *bintree.Tree
}

// NewLBPair validates the fee preset once (the factory-time check) and
// starts an empty pair trading at activeID, with bin membership mirrored
// into the given word store.
func NewLBPair(params types.FeeParameters, activeID uint32, store bintree.WordStore) (*LBPair, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if activeID > constants.MaxBinID {
		return nil, fmt.Errorf("bin id %d out of the 24-bit id space", activeID)
	}
	return &LBPair{
		Info:   types.PairInformation{ActiveID: activeID},
		Params: params,
		bins:   make(map[uint32]*types.Bin),
		supply: make(map[uint32]*uint256.Int),
		tree:   bintree.NewTree(store),
	}, nil
}

// Bin returns the bin at id, or nil when it was never funded.
func (p *LBPair) Bin(id uint32) *types.Bin {
	return p.bins[id]
}

// Tree exposes the bin membership index, read-only use intended.
func (p *LBPair) Tree() *bintree.Tree {
	return p.tree
}

// TotalSupply returns the liquidity supply of the bin at id.
func (p *LBPair) TotalSupply(id uint32) *uint256.Int {
	if s := p.supply[id]; s != nil {
		return s.Clone()
	}
	return new(uint256.Int)
}

// AddLiquidity parks amounts into the bin at id, creating the bin and its
// tree entry on first funding. Shares are minted 1:1 against raw amounts;
// position-level accounting (Debt) belongs to the liquidity-position
// layer.
func (p *LBPair) AddLiquidity(id uint32, amountX, amountY *uint256.Int) {
	bin := p.bins[id]
	if bin == nil {
		bin = new(types.Bin)
		p.bins[id] = bin
		p.supply[id] = new(uint256.Int)
	}
	bin.ReserveX.Add(&bin.ReserveX, amountX)
	bin.ReserveY.Add(&bin.ReserveY, amountY)
	p.Info.ReserveX.Add(&p.Info.ReserveX, amountX)
	p.Info.ReserveY.Add(&p.Info.ReserveY, amountY)
	p.supply[id].Add(p.supply[id], new(uint256.Int).Add(amountX, amountY))

	if !bin.ReserveX.IsZero() || !bin.ReserveY.IsZero() {
		p.tree.Insert(id)
	}
}

// RemoveLiquidity takes amounts back out of the bin at id, dropping the
// bin from the tree once both reserves reach zero.
func (p *LBPair) RemoveLiquidity(id uint32, amountX, amountY *uint256.Int) error {
	bin := p.bins[id]
	if bin == nil || bin.ReserveX.Lt(amountX) || bin.ReserveY.Lt(amountY) {
		return ErrInsufficientReserve
	}
	bin.ReserveX.Sub(&bin.ReserveX, amountX)
	bin.ReserveY.Sub(&bin.ReserveY, amountY)
	p.Info.ReserveX.Sub(&p.Info.ReserveX, amountX)
	p.Info.ReserveY.Sub(&p.Info.ReserveY, amountY)

	// Swaps can grow a bin's reserves past its minted share units, so the
	// last withdrawal may burn more units than remain; the supply floors at
	// zero while the reserves drain by the requested amounts.
	burned := new(uint256.Int).Add(amountX, amountY)
	if s := p.supply[id]; s != nil {
		if s.Lt(burned) {
			s.Clear()
		} else {
			s.Sub(s, burned)
		}
	}

	if bin.ReserveX.IsZero() && bin.ReserveY.IsZero() {
		p.tree.Remove(id)
	}
	return nil
}

// Swap fills amountIn bin by bin, starting at the active bin and walking
// toward cheaper bins when selling X for Y, pricier ones otherwise. Each
// bin is visited once, so the loop is bounded by the number of populated
// bins crossed.
//
// On ErrOutOfLiquidity the partial result is returned alongside the error;
// committing or discarding the mutated state is the host's call.
func (p *LBPair) Swap(amountIn *uint256.Int, swapForY bool, now uint64) (*SwapResult, error) {
	if amountIn.IsZero() {
		return nil, ErrZeroSwapAmount
	}
	helpers.UpdateVariableFeeParameters(&p.Params, p.Info.ActiveID, now)

	res := new(SwapResult)
	remaining := amountIn.Clone()
	for {
		if bin := p.bins[p.Info.ActiveID]; bin != nil && !bin.IsEmpty(swapForY) {
			inToBin, outOfBin, fees, err := helpers.GetAmounts(bin, &p.Params, p.Info.ActiveID, swapForY, remaining)
			if err != nil {
				return nil, err
			}
			if !inToBin.IsZero() {
				remaining.Sub(remaining, inToBin)
				res.AmountInUsed.Add(&res.AmountInUsed, inToBin)
				res.AmountOut.Add(&res.AmountOut, outOfBin)
				res.Fees.Total.Add(&res.Fees.Total, &fees.Total)
				res.Fees.Protocol.Add(&res.Fees.Protocol, &fees.Protocol)

				netIn := new(uint256.Int).Sub(inToBin, &fees.Total)
				if swapForY {
					bin.ReserveX.Add(&bin.ReserveX, netIn)
					bin.ReserveY.Sub(&bin.ReserveY, outOfBin)
					p.Info.ReserveX.Add(&p.Info.ReserveX, netIn)
					p.Info.ReserveY.Sub(&p.Info.ReserveY, outOfBin)
				} else {
					bin.ReserveY.Add(&bin.ReserveY, netIn)
					bin.ReserveX.Sub(&bin.ReserveX, outOfBin)
					p.Info.ReserveY.Add(&p.Info.ReserveY, netIn)
					p.Info.ReserveX.Sub(&p.Info.ReserveX, outOfBin)
				}
				bin.UpdateFees(&p.Info, &fees, swapForY, p.supply[p.Info.ActiveID])
			}
		}

		if remaining.IsZero() {
			break
		}
		next, err := p.tree.FindFirstBin(p.Info.ActiveID, swapForY)
		if err != nil {
			return res, ErrOutOfLiquidity
		}
		p.Info.ActiveID = next
		helpers.UpdateVolatilityAccumulated(&p.Params, p.Info.ActiveID)
	}
	return res, nil
}

// GetSwapOut quotes a swap without touching pair state: same walk as Swap
// over a scratch copy of the fee parameters.
func (p *LBPair) GetSwapOut(amountIn *uint256.Int, swapForY bool, now uint64) (amountOut, feePaid *uint256.Int, err error) {
	if amountIn.IsZero() {
		return nil, nil, ErrZeroSwapAmount
	}
	params := p.Params
	helpers.UpdateVariableFeeParameters(&params, p.Info.ActiveID, now)

	amountOut, feePaid = new(uint256.Int), new(uint256.Int)
	remaining := amountIn.Clone()
	activeID := p.Info.ActiveID
	for {
		if bin := p.bins[activeID]; bin != nil && !bin.IsEmpty(swapForY) {
			inToBin, outOfBin, fees, err := helpers.GetAmounts(bin, &params, activeID, swapForY, remaining)
			if err != nil {
				return nil, nil, err
			}
			remaining.Sub(remaining, inToBin)
			amountOut.Add(amountOut, outOfBin)
			feePaid.Add(feePaid, &fees.Total)
		}

		if remaining.IsZero() {
			break
		}
		next, err := p.tree.FindFirstBin(activeID, swapForY)
		if err != nil {
			return amountOut, feePaid, ErrOutOfLiquidity
		}
		activeID = next
		helpers.UpdateVolatilityAccumulated(&params, activeID)
	}
	return amountOut, feePaid, nil
}
