package cli

const topMenu = `
Welcome to AuthSimulator!
Please select one of the following [1-3].
===========================================
1. Create an account.
2. Login to account.
3. Exit application.
===========================================
`

const createForm = `
Please fill the form below.
*** All fields are required ***
*** Password will not display on screen ***
===========================================
`

const loginForm = `
Login Form
*** All fields are required ***
*** Password will not display on screen ***
===========================================
`

const sessionMenu = `
===========================================
1. Get user info
2. Update user name
3. Logout
===========================================
`
