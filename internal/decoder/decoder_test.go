package decoder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d21d3q/goaivdm/internal/bitvec"
)

func TestLookupUnknownType(t *testing.T) {
	for _, tc := range []int{0, -1, 25, 63} {
		_, err := Lookup(tc)
		require.ErrorIs(t, err, ErrUnknownMessageType, "type %d", tc)
	}
}

func TestLookupNotImplemented(t *testing.T) {
	for tc := 6; tc <= 24; tc++ {
		if tc == 18 {
			continue
		}
		_, err := Lookup(tc)
		var notImpl NotImplementedError
		require.ErrorAs(t, err, &notImpl, "type %d", tc)
		require.Equal(t, tc, notImpl.TypeCode)
	}
}

func TestLookupImplemented(t *testing.T) {
	for _, tc := range []int{1, 2, 3, 4, 5, 18} {
		d, err := Lookup(tc)
		require.NoError(t, err, "type %d", tc)
		require.NotNil(t, d)
	}
}

func TestDispatchPositionReport(t *testing.T) {
	v, err := bitvec.DeArmor("15M67FC000G?ufbE`FepT@3n00Sa")
	require.NoError(t, err)

	msg, err := Dispatch(v)
	require.NoError(t, err)
	report, ok := msg.(PositionReport)
	require.True(t, ok, "expected PositionReport, got %T", msg)

	require.Equal(t, 1, report.Type)
	require.Equal(t, uint32(366053209), report.MMSI)
	require.Equal(t, "Restricted manoeuverability", report.Status.Label)
	require.InDelta(t, -122.3416183, report.Lon, 1e-6)
	require.InDelta(t, 37.8021183, report.Lat, 1e-6)
	require.InDelta(t, 219.3, report.Course, 1e-6)
	require.Equal(t, 59, report.Second)
	require.False(t, report.RAIM)
	require.Equal(t, 2281, report.Radio)
}

func TestDispatchClassB(t *testing.T) {
	v, err := bitvec.DeArmor("B52KlJP00=l4be5ItJ6r3wVUWP06")
	require.NoError(t, err)

	msg, err := Dispatch(v)
	require.NoError(t, err)
	report, ok := msg.(ClassBPositionReport)
	require.True(t, ok, "expected ClassBPositionReport, got %T", msg)

	require.Equal(t, 18, report.Type)
	require.Equal(t, uint32(338097258), report.MMSI)
	require.True(t, report.CS)
	require.False(t, report.Display)
	require.True(t, report.DSC)
	require.True(t, report.Band)
	require.False(t, report.Msg22)
	require.False(t, report.Assigned)
	require.True(t, report.RAIM)
	require.InDelta(t, -122.2701433, report.Lon, 1e-6)
	require.InDelta(t, 37.786295, report.Lat, 1e-6)
}

func TestDispatchNotImplementedType(t *testing.T) {
	// '8' is sextet 8, a valid but undecoded binary broadcast type.
	v, err := bitvec.DeArmor("8000")
	require.NoError(t, err)

	_, err = Dispatch(v)
	var notImpl NotImplementedError
	require.ErrorAs(t, err, &notImpl)
	require.Equal(t, 8, notImpl.TypeCode)
	require.NotErrorIs(t, err, ErrUnknownMessageType)
}

func TestFieldsCoverTypedStruct(t *testing.T) {
	v, err := bitvec.DeArmor("15M67FC000G?ufbE`FepT@3n00Sa")
	require.NoError(t, err)
	msg, err := Dispatch(v)
	require.NoError(t, err)

	fields := msg.Fields()
	require.Equal(t, 1, fields["type"])
	require.Equal(t, uint32(366053209), fields["mmsi"])
	require.Equal(t, "Restricted manoeuverability", fields["status"])
	require.Equal(t, uint(3), fields["status_code"])
	require.Equal(t, false, fields["raim"])
}

func TestDecodeIsPure(t *testing.T) {
	v, err := bitvec.DeArmor("15M67FC000G?ufbE`FepT@3n00Sa")
	require.NoError(t, err)

	first, err := Dispatch(v)
	require.NoError(t, err)
	second, err := Dispatch(v)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRegisterRejectsBadTypeCode(t *testing.T) {
	require.Panics(t, func() { Register(positionDecoder{}, 0) })
	require.Panics(t, func() { Register(positionDecoder{}, MaxType+1) })
}

func TestErrorsAreDistinct(t *testing.T) {
	require.False(t, errors.Is(NotImplementedError{TypeCode: 6}, ErrUnknownMessageType))
}
