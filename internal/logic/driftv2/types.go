package driftv2

import (
	"fmt"

	bin "github.com/gagliardetto/binary"
)

// 以下枚举在链上以 u8 下标编码，常量顺序即线上协议顺序，不可调整

type OrderType uint8

const (
	OrderTypeMarket OrderType = iota
	OrderTypeLimit
	OrderTypeTriggerMarket
	OrderTypeTriggerLimit
	OrderTypeOracle
	orderTypeCount
)

type MarketType uint8

const (
	MarketTypeSpot MarketType = iota
	MarketTypePerp
	marketTypeCount
)

type PositionDirection uint8

const (
	PositionDirectionLong PositionDirection = iota
	PositionDirectionShort
	positionDirectionCount
)

type PostOnlyParam uint8

const (
	PostOnlyNone PostOnlyParam = iota
	PostOnlyMustPostOnly
	PostOnlyTryPostOnly
	PostOnlySlide
	postOnlyParamCount
)

type OrderTriggerCondition uint8

const (
	TriggerAbove OrderTriggerCondition = iota
	TriggerBelow
	TriggerTriggeredAbove
	TriggerTriggeredBelow
	orderTriggerConditionCount
)

type SpotFulfillmentType uint8

const (
	SpotFulfillmentSerumV3 SpotFulfillmentType = iota
	SpotFulfillmentMatch
	SpotFulfillmentPhoenixV1
	spotFulfillmentTypeCount
)

type SwapReduceOnly uint8

const (
	SwapReduceOnlyIn SwapReduceOnly = iota
	SwapReduceOnlyOut
	swapReduceOnlyCount
)

type SettlePnlMode uint8

const (
	SettlePnlMustSettle SettlePnlMode = iota
	SettlePnlTrySettle
	settlePnlModeCount
)

type ModifyOrderPolicy uint8

const (
	ModifyOrderPolicyTryModify ModifyOrderPolicy = iota
	ModifyOrderPolicyMustModify
	modifyOrderPolicyCount
)

var (
	orderTypeNames             = [...]string{"Market", "Limit", "TriggerMarket", "TriggerLimit", "Oracle"}
	marketTypeNames            = [...]string{"Spot", "Perp"}
	positionDirectionNames     = [...]string{"Long", "Short"}
	postOnlyParamNames         = [...]string{"None", "MustPostOnly", "TryPostOnly", "Slide"}
	orderTriggerConditionNames = [...]string{"Above", "Below", "TriggeredAbove", "TriggeredBelow"}
	spotFulfillmentTypeNames   = [...]string{"SerumV3", "Match", "PhoenixV1"}
	swapReduceOnlyNames        = [...]string{"In", "Out"}
	settlePnlModeNames         = [...]string{"MustSettle", "TrySettle"}
	modifyOrderPolicyNames     = [...]string{"TryModify", "MustModify"}
)

func enumName(names []string, v uint8) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("Unknown(%d)", v)
}

func (v OrderType) String() string         { return enumName(orderTypeNames[:], uint8(v)) }
func (v MarketType) String() string        { return enumName(marketTypeNames[:], uint8(v)) }
func (v PositionDirection) String() string { return enumName(positionDirectionNames[:], uint8(v)) }
func (v PostOnlyParam) String() string     { return enumName(postOnlyParamNames[:], uint8(v)) }
func (v OrderTriggerCondition) String() string {
	return enumName(orderTriggerConditionNames[:], uint8(v))
}
func (v SpotFulfillmentType) String() string { return enumName(spotFulfillmentTypeNames[:], uint8(v)) }
func (v SwapReduceOnly) String() string      { return enumName(swapReduceOnlyNames[:], uint8(v)) }
func (v SettlePnlMode) String() string       { return enumName(settlePnlModeNames[:], uint8(v)) }
func (v ModifyOrderPolicy) String() string   { return enumName(modifyOrderPolicyNames[:], uint8(v)) }

// MarshalText 输出枚举名，便于日志与 Kafka 记录阅读

func (v OrderType) MarshalText() ([]byte, error)             { return []byte(v.String()), nil }
func (v MarketType) MarshalText() ([]byte, error)            { return []byte(v.String()), nil }
func (v PositionDirection) MarshalText() ([]byte, error)     { return []byte(v.String()), nil }
func (v PostOnlyParam) MarshalText() ([]byte, error)         { return []byte(v.String()), nil }
func (v OrderTriggerCondition) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v SpotFulfillmentType) MarshalText() ([]byte, error)   { return []byte(v.String()), nil }
func (v SwapReduceOnly) MarshalText() ([]byte, error)        { return []byte(v.String()), nil }
func (v SettlePnlMode) MarshalText() ([]byte, error)         { return []byte(v.String()), nil }
func (v ModifyOrderPolicy) MarshalText() ([]byte, error)     { return []byte(v.String()), nil }

// Uint128 对应链上 u128，按小端拆成低、高两个 u64
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// String 十进制表示
func (u Uint128) String() string {
	return bin.Uint128{Lo: u.Lo, Hi: u.Hi}.DecimalString()
}

func (u Uint128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// OrderParams 下单参数
type OrderParams struct {
	OrderType         OrderType
	MarketType        MarketType
	Direction         PositionDirection
	UserOrderID       uint8
	BaseAssetAmount   uint64
	Price             uint64
	MarketIndex       uint16
	ReduceOnly        bool
	PostOnly          PostOnlyParam
	ImmediateOrCancel bool
	MaxTs             *int64  `bin:"optional"`
	TriggerPrice      *uint64 `bin:"optional"`
	TriggerCondition  OrderTriggerCondition
	OraclePriceOffset *int32 `bin:"optional"`
	AuctionDuration   *uint8 `bin:"optional"`
	AuctionStartPrice *int64 `bin:"optional"`
	AuctionEndPrice   *int64 `bin:"optional"`
}

func (p *OrderParams) validate() error {
	return firstErr(
		checkEnum("order_type", uint8(p.OrderType), uint8(orderTypeCount)),
		checkEnum("market_type", uint8(p.MarketType), uint8(marketTypeCount)),
		checkEnum("direction", uint8(p.Direction), uint8(positionDirectionCount)),
		checkEnum("post_only", uint8(p.PostOnly), uint8(postOnlyParamCount)),
		checkEnum("trigger_condition", uint8(p.TriggerCondition), uint8(orderTriggerConditionCount)),
	)
}

// ModifyOrderParams 改单参数，全部字段可选
type ModifyOrderParams struct {
	Direction         *PositionDirection     `bin:"optional"`
	BaseAssetAmount   *uint64                `bin:"optional"`
	Price             *uint64                `bin:"optional"`
	ReduceOnly        *bool                  `bin:"optional"`
	PostOnly          *PostOnlyParam         `bin:"optional"`
	ImmediateOrCancel *bool                  `bin:"optional"`
	MaxTs             *int64                 `bin:"optional"`
	TriggerPrice      *uint64                `bin:"optional"`
	TriggerCondition  *OrderTriggerCondition `bin:"optional"`
	OraclePriceOffset *int32                 `bin:"optional"`
	AuctionDuration   *uint8                 `bin:"optional"`
	AuctionStartPrice *int64                 `bin:"optional"`
	AuctionEndPrice   *int64                 `bin:"optional"`
	Policy            *ModifyOrderPolicy     `bin:"optional"`
}

func (p *ModifyOrderParams) validate() error {
	var errs []error
	if p.Direction != nil {
		errs = append(errs, checkEnum("direction", uint8(*p.Direction), uint8(positionDirectionCount)))
	}
	if p.PostOnly != nil {
		errs = append(errs, checkEnum("post_only", uint8(*p.PostOnly), uint8(postOnlyParamCount)))
	}
	if p.TriggerCondition != nil {
		errs = append(errs, checkEnum("trigger_condition", uint8(*p.TriggerCondition), uint8(orderTriggerConditionCount)))
	}
	if p.Policy != nil {
		errs = append(errs, checkEnum("policy", uint8(*p.Policy), uint8(modifyOrderPolicyCount)))
	}
	return firstErr(errs...)
}

// checkEnum 校验枚举下标是否越界
func checkEnum(field string, v, count uint8) error {
	if v >= count {
		return fmt.Errorf("enum %s out of range: %d >= %d", field, v, count)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
